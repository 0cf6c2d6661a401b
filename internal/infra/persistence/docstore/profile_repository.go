// Package docstore keeps user profiles as Firestore documents keyed by the
// identity provider's subject identifier.
package docstore

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type addressDocument struct {
	Label       string `firestore:"label"`
	FullAddress string `firestore:"fullAddress"`
	City        string `firestore:"city"`
	PostalCode  string `firestore:"postalCode"`
	IsDefault   bool   `firestore:"isDefault"`
}

// profileDocument is the stored shape of a profile. The document ID is the
// subject, so it is not repeated in the body.
type profileDocument struct {
	Email     string            `firestore:"email"`
	Name      string            `firestore:"name"`
	Role      string            `firestore:"role,omitempty"`
	Phone     *string           `firestore:"phone,omitempty"`
	Addresses []addressDocument `firestore:"addresses"`
	CreatedAt time.Time         `firestore:"createdAt"`
}

// profileRepository implements repository.ProfileRepository with Firestore.
type profileRepository struct {
	collection *firestore.CollectionRef
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, cfg *config.Config) repository.ProfileRepository {
	return &profileRepository{
		collection: client.Collection(cfg.Firebase.UsersCollection),
	}
}

// FindByID reads the profile document of subject id.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	return decodeProfile(snap)
}

// Create writes the whole profile document.
func (repo *profileRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.collection.Doc(user.ID).Set(ctx, toProfileDocument(user)); err != nil {
		return errors.Wrap(err, "failed to write profile document")
	}

	return nil
}

// Merge writes the fields set in patch only.
func (repo *profileRepository) Merge(ctx context.Context, id string, patch *entity.UserPatch) error {
	fields := mergeFields(patch)
	if len(fields) == 0 {
		return nil
	}

	if _, err := repo.collection.Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to merge profile document")
	}

	return nil
}

// List returns every profile document.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.User, error) {
	snaps, err := repo.collection.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile documents")
	}

	users := make([]*entity.User, 0, len(snaps))
	for _, snap := range snaps {
		user, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile document %s", snap.Ref.ID)
	}

	return toUserDomain(snap.Ref.ID, &doc), nil
}

func toUserDomain(id string, doc *profileDocument) *entity.User {
	user := &entity.User{
		ID:        id,
		Email:     doc.Email,
		Name:      doc.Name,
		Role:      entity.RoleFromString(doc.Role),
		Phone:     doc.Phone,
		Addresses: make([]entity.Address, 0, len(doc.Addresses)),
		CreatedAt: doc.CreatedAt,
	}
	for _, addr := range doc.Addresses {
		user.Addresses = append(user.Addresses, entity.Address(addr))
	}

	return user
}

func toProfileDocument(user *entity.User) *profileDocument {
	doc := &profileDocument{
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Addresses: toAddressDocuments(user.Addresses),
		CreatedAt: user.CreatedAt,
	}
	if user.Role != nil {
		doc.Role = user.Role.String()
	}

	return doc
}

func toAddressDocuments(addresses []entity.Address) []addressDocument {
	docs := make([]addressDocument, 0, len(addresses))
	for _, addr := range addresses {
		docs = append(docs, addressDocument(addr))
	}

	return docs
}

// mergeFields maps the set fields of patch to their document field names.
func mergeFields(patch *entity.UserPatch) map[string]any {
	fields := map[string]any{}
	if patch == nil {
		return fields
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Addresses != nil {
		fields["addresses"] = toAddressDocuments(*patch.Addresses)
	}

	return fields
}
