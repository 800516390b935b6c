package service

import (
	"errors"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"
	"dermasilk/internal/validate"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MembershipService keeps the membership table and the client table in
// step: creating a membership for an unknown email registers the client
// (with zero points), and contact edits flow both ways.
type MembershipService struct {
	membershipRepo *repository.MembershipRepository
	clientRepo     *repository.ClientRepository
}

func NewMembershipService(membershipRepo *repository.MembershipRepository, clientRepo *repository.ClientRepository) *MembershipService {
	return &MembershipService{membershipRepo: membershipRepo, clientRepo: clientRepo}
}

// Create stores the membership and then registers or refreshes the client
// record. A client sync failure is logged but never fails the membership
// write; the membership is the primary record here.
func (s *MembershipService) Create(m *models.Membership) error {
	m.ClientName = validate.NormalizeName(m.ClientName)
	if m.ClientEmail != nil {
		email := validate.NormalizeEmail(*m.ClientEmail)
		m.ClientEmail = &email
	}
	if err := s.membershipRepo.Create(m); err != nil {
		return err
	}
	if m.ClientEmail == nil || *m.ClientEmail == "" {
		return nil
	}
	existing, err := s.clientRepo.GetByEmail(*m.ClientEmail)
	switch {
	case err == nil:
		existing.Name = m.ClientName
		existing.Phone = m.ClientPhone
		if err := s.clientRepo.Update(existing); err != nil {
			log.Error().Err(err).Uint("client_id", existing.ID).Msg("membership: refresh client")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		c := &models.Client{
			Name:   m.ClientName,
			Email:  *m.ClientEmail,
			Phone:  m.ClientPhone,
			Points: 0,
		}
		if err := s.clientRepo.Create(c); err != nil {
			log.Error().Err(err).Str("email", *m.ClientEmail).Msg("membership: create client")
		}
	default:
		log.Error().Err(err).Msg("membership: lookup client")
	}
	return nil
}

// Update saves membership changes and pushes the contact fields into the
// linked client record when the email matches an existing client.
func (s *MembershipService) Update(m *models.Membership) error {
	current, err := s.membershipRepo.GetByID(m.ID)
	if err != nil {
		return err
	}
	m.ClientName = validate.NormalizeName(m.ClientName)
	if m.ClientEmail != nil {
		email := validate.NormalizeEmail(*m.ClientEmail)
		m.ClientEmail = &email
	}
	if err := s.membershipRepo.Update(m); err != nil {
		return err
	}
	if current.ClientEmail == nil || *current.ClientEmail == "" {
		return nil
	}
	client, err := s.clientRepo.GetByEmail(*current.ClientEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("membership: lookup client for sync")
		}
		return nil
	}
	client.Name = m.ClientName
	client.Phone = m.ClientPhone
	if m.ClientEmail != nil && *m.ClientEmail != "" {
		client.Email = *m.ClientEmail
	}
	if err := s.clientRepo.Update(client); err != nil {
		log.Error().Err(err).Uint("client_id", client.ID).Msg("membership: sync client")
	}
	return nil
}

// CompleteSession advances session progress and flips the membership to
// completada once every session is used.
func (s *MembershipService) CompleteSession(id uint) (*models.Membership, error) {
	m, err := s.membershipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m.CompletedSessions >= m.TotalSessions {
		return m, nil
	}
	m.CompletedSessions++
	if m.CompletedSessions >= m.TotalSessions {
		m.Status = domain.StatusCompletada
	}
	if err := s.membershipRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}
