package services

import (
	"log"

	"techstore/internal/domain"
	"techstore/internal/repos"
)

// AuditService records admin actions. Recording is fire-and-forget: a failed
// insert is logged but never fails the action that triggered it.
type AuditService struct {
	Logs *repos.ActionLogRepo
}

func NewAuditService(logs *repos.ActionLogRepo) *AuditService {
	return &AuditService{Logs: logs}
}

func (s *AuditService) Record(actorEmail, action, entityName, entityID, details string) {
	if err := s.Logs.Insert(actorEmail, action, entityName, entityID, details); err != nil {
		log.Printf("[audit] insert failed: %v", err)
	}
}

func (s *AuditService) List() ([]domain.ActionLog, error) {
	return s.Logs.ListLatest(100)
}
