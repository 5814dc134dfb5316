package http

import (
	"time"

	"assistente-agenda/internal/assistant"
)

// --- Request DTOs ---

type messageReq struct {
	Text string `json:"text"`
}

func (r messageReq) toInput(creds assistant.CredentialProvider) assistant.HandleInput {
	return assistant.HandleInput{
		Text:        r.Text,
		Credentials: creds,
	}
}

type upcomingReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=31"`
}

func (r upcomingReq) toInput(creds assistant.CredentialProvider) assistant.UpcomingInput {
	return assistant.UpcomingInput{
		Credentials: creds,
		Days:        r.Days,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Reply   string `json:"reply"`
	Kind    string `json:"kind"`
	EventID string `json:"event_id,omitempty"`
	Link    string `json:"link,omitempty"`
}

func newMessageResp(out assistant.HandleOutput) messageResp {
	return messageResp{
		Reply:   out.Reply,
		Kind:    string(out.Kind),
		EventID: out.EventID,
		Link:    out.Link,
	}
}

type eventResp struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	AllDay bool      `json:"all_day"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Link   string    `json:"link,omitempty"`
}

type upcomingResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newUpcomingResp(out assistant.UpcomingOutput) upcomingResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = eventResp{
			ID:     e.ID,
			Title:  e.Title,
			AllDay: e.AllDay,
			Start:  e.Start,
			End:    e.End,
			Link:   e.Link,
		}
	}
	return upcomingResp{Events: events, Count: out.Count}
}
