// Package fallback answers prompts that are not project-creation requests with
// canned responses.
package fallback

import "strings"

// Rule pairs a trigger substring with the response it selects.
type Rule struct {
	Trigger  string
	Response string
}

// rules is scanned in order and the first trigger contained in the prompt
// wins. Matching is plain substring containment, so "hi" also fires inside
// "this" and "project" shadows "create" when both appear.
var rules = []Rule{
	{Trigger: "hello", Response: helloResponse},
	{Trigger: "hi", Response: hiResponse},
	{Trigger: "how are you", Response: statusResponse},
	{Trigger: "project", Response: projectResponse},
	{Trigger: "create", Response: createResponse},
	{Trigger: "what can you do", Response: capabilitiesResponse},
}

// Rules returns a copy of the trigger table in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Match reports the first trigger found in prompt.
func Match(prompt string) (string, bool) {
	r, ok := match(prompt)
	return r.Trigger, ok
}

// Route returns the canned response for prompt, or the capability overview
// when nothing matches.
func Route(prompt string) string {
	if r, ok := match(prompt); ok {
		return r.Response
	}
	return defaultResponse
}

func match(prompt string) (Rule, bool) {
	lower := strings.ToLower(strings.TrimSpace(prompt))
	for _, r := range rules {
		if strings.Contains(lower, r.Trigger) {
			return r, true
		}
	}
	return Rule{}, false
}

// DefaultResponse is the overview returned for unmatched prompts.
func DefaultResponse() string { return defaultResponse }
