package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"portfolio-admin-server/global"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/types"
)

type ContactService struct {
	contactRepo repository.Repository
	env         *types.Environment
}

func NewContactService(dbSelector *repository.CouchDBSelector, env *types.Environment) *ContactService {
	contactRepo, err := dbSelector.ChooseDB(repository.Contacts)
	if err != nil {
		panic(err)
	}
	return &ContactService{contactRepo: contactRepo, env: env}
}

func (s *ContactService) List() ([]*types.Contact, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	docs, err := s.contactRepo.GetAll(ctx, listLimit, 0)
	if err != nil {
		return nil, err
	}
	contacts := make([]*types.Contact, 0, len(docs))
	for _, doc := range docs {
		var contact types.Contact
		if uErr := json.Unmarshal(doc, &contact); uErr != nil {
			global.Logger.Log("ContactService.List", "failed to decode document", "error", uErr.Error())
			return nil, uErr
		}
		contacts = append(contacts, &contact)
	}
	return contacts, nil
}

func (s *ContactService) Get(id string) (*types.Contact, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	response, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var contact types.Contact
	if mErr := repository.MapToObject(response, &contact); mErr != nil {
		return nil, mErr
	}
	return &contact, nil
}

// Create stores an inbound message from the public site.
func (s *ContactService) Create(input *types.InputContact) (*types.Contact, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	now := time.Now().UTC().UnixMilli()
	contact := &types.Contact{
		BaseDocument: types.BaseDocument{ID: uuid.NewString()},
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Message:      input.Message,
		IsRead:       false,
		Created:      now,
		Modified:     now,
	}

	if err := s.contactRepo.Save(ctx, contact.ID, contact); err != nil {
		global.Logger.Log("ContactService.Create", "failed to save", "error", err.Error())
		return nil, err
	}
	return contact, nil
}

// MarkRead flips isRead and nothing else; modified intentionally keeps its
// stored value so the message itself reads as untouched.
func (s *ContactService) MarkRead(id string) (*types.Contact, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing.IsRead {
		return existing, nil
	}
	existing.IsRead = true

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if sErr := s.contactRepo.Save(ctx, existing.ID, existing); sErr != nil {
		global.Logger.Log("ContactService.MarkRead", "failed to save", "error", sErr.Error())
		return nil, sErr
	}
	return existing, nil
}

func (s *ContactService) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		global.Logger.Log("ContactService.Delete", "failed to delete", "error", err.Error())
		return err
	}
	return nil
}
