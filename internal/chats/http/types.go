package http

import "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"

type Handler struct {
	svc *service.ChatService
}

func New(svc *service.ChatService) *Handler {
	return &Handler{svc: svc}
}

type postMsgReq struct {
	Message string `json:"message"`
}
