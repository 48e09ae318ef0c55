package interfaces

import "fieldserve/internal/domain/entities"

// IWizardSessionStore holds in-progress wizard sessions. Sessions are
// process-local and ephemeral: there is no durable backing, abandoning a
// session discards its answers.
type IWizardSessionStore interface {
	Put(s entities.WizardSession)
	Get(id string) (entities.WizardSession, bool)
	Delete(id string)
}
