package domain

// ReplyKind tells the caller which branch produced a reply.
type ReplyKind string

const (
	ReplyProject      ReplyKind = "project"
	ReplyConversation ReplyKind = "conversation"
	ReplyDegraded     ReplyKind = "degraded"
)

// Reply is the dispatcher's result. A failed project-creation turn is still a
// Reply (Kind == ReplyDegraded, Err set) so a turn can never fail outright.
type Reply struct {
	Kind    ReplyKind      `json:"kind"`
	Text    string         `json:"answer"`
	Type    ProjectType    `json:"project_type,omitempty"`
	Project *ProjectRecord `json:"project,omitempty"`
	Err     error          `json:"-"`
}

func (r Reply) Degraded() bool { return r.Kind == ReplyDegraded }
