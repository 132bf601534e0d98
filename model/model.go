// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

// Client identifies the monitored entity that produced an event.
type Client struct {
	// Name is the unique client name as known by the monitoring platform.
	Name string `json:"name"`
}

// Check is the check result carried by an event.
type Check struct {
	// Name is the check name, unique per client.
	Name string `json:"name"`

	// Tags is the ordered list of key=value strings attached to the check.
	Tags []string `json:"tags,omitempty"`
}

// Event is an inbound failure event as delivered by the monitoring platform.
// Both fields are optional on the wire.
type Event struct {
	Client *Client `json:"client,omitempty"`
	Check  *Check  `json:"check,omitempty"`
}

// ClientName returns the client name or the empty string when the event
// carries no client.
func (e Event) ClientName() string {
	if e.Client == nil {
		return ""
	}
	return e.Client.Name
}

// CheckName returns the check name or the empty string when the event
// carries no check.
func (e Event) CheckName() string {
	if e.Check == nil {
		return ""
	}
	return e.Check.Name
}

// Tags returns the check tags, nil when the event carries no check.
func (e Event) Tags() []string {
	if e.Check == nil {
		return nil
	}
	return e.Check.Tags
}

// Stash is a key/value record persisted by the monitoring platform.
type Stash struct {
	// Path identifies the stash, i.e. auto_resolve/web1_disk.
	Path string `json:"path"`

	// Content is an abstract json object.
	Content map[string]interface{} `json:"content,omitempty"`
}

// ResolveRequest is the payload of a resolve action.
type ResolveRequest struct {
	Client string `json:"client"`
	Check  string `json:"check"`
}
