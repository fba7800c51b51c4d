package models

// ChatSession is one entry of a category's active chat list
// (contentActiveChats / complianceActiveChats). The chat surface itself
// lives elsewhere; this service only persists the lists.
type ChatSession struct {
	Title            string `json:"title"`
	Path             string `json:"path"`
	Hidden           bool   `json:"hidden,omitempty"`
	Pinned           bool   `json:"pinned,omitempty"`
	SkipSuggestions  bool   `json:"skipSuggestions,omitempty"`
	IsConversational bool   `json:"isConversational,omitempty"`
}
