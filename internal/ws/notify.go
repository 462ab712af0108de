package ws

import (
	"encoding/json"
	"time"

	"project-recommender/internal/domain/project"

	"github.com/google/uuid"
)

const EventProjectCreated = "project_created"

type ProjectCreatedEvent struct {
	Type      string    `json:"type"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Timestamp string    `json:"timestamp"`
}

// ProjectNotifier publishes project lifecycle events on a hub.
type ProjectNotifier struct {
	hub *Hub
	now func() time.Time
}

func NewProjectNotifier(hub *Hub) *ProjectNotifier {
	return &ProjectNotifier{hub: hub, now: time.Now}
}

func (n *ProjectNotifier) ProjectCreated(p project.Project) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(ProjectCreatedEvent{
		Type:      EventProjectCreated,
		ProjectID: p.ID,
		Title:     p.Title,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
