package usecase

import (
	"context"

	"resume-builder/internal/config"
	"resume-builder/internal/editor"
	"resume-builder/internal/store"
	"resume-builder/pkg/ai"
)

// Session bundles the remote clients a front end needs, wired from one
// configuration.
type Session struct {
	Store  *store.Client
	AI     *ai.Client
	notify editor.Notifier
}

func NewSession(cfg *config.Config, notify editor.Notifier) *Session {
	if notify == nil {
		notify = editor.LogNotifier{}
	}
	sc := store.NewClient()
	sc.BaseURL = cfg.StoreURL
	sc.APIKey = cfg.StoreAPIKey
	ac := ai.NewClient()
	ac.BaseURL = cfg.AIServiceURL
	return &Session{Store: sc, AI: ac, notify: notify}
}

func (s *Session) Dashboard() *Dashboard {
	return NewDashboard(s.Store, s.notify)
}

// Open loads one resume record into a wizard.
func (s *Session) Open(ctx context.Context, id string) (*Wizard, error) {
	return OpenWizard(ctx, s.Store, s.AI, id, s.notify)
}
