package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tasknest/infras/otel"
	"tasknest/infras/postgres"
	"tasknest/internal/domains/project/model"
	"tasknest/shared"
	gDto "tasknest/shared/dto"
	gRepo "tasknest/shared/repository"

	"github.com/jmoiron/sqlx"
)

const argExcludeID = "exclude_id"

type Project interface {
	Insert(ctx context.Context, model model.Project) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Project, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Project, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Project]
}

func New(db *postgres.Connection, otel otel.Otel) Project {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Project](model.EntityName, model.TableName, db, otel),
	}
}

// FilterByOwner matches every project owned by ownerID.
func FilterByOwner(ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// FilterOwned matches projectID only when it belongs to ownerID.
func FilterOwned(projectID, ownerID string) gDto.FilterGroup {
	return shared.FilterByIDAndOwner(projectID, model.FieldID, ownerID, model.FieldOwnerID, model.TableName)
}

// FilterByTitle matches ownerID's project named title, ignoring excludeID when set.
func FilterByTitle(ownerID, title, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldOwnerID,
			Value:    ownerID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldTitle,
			Value:    title,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  argExcludeID,
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// OwnedIDs selects the ids of every project owned by the :owner_id argument.
func OwnedIDs(ownerID string) gDto.SubQuery {
	return gDto.SubQuery{
		Query: fmt.Sprintf("SELECT %s.%s FROM %s WHERE %s.%s = :%s",
			model.TableName, model.FieldID, model.TableName, model.TableName, model.FieldOwnerID, model.FieldOwnerID),
		Args: map[string]any{model.FieldOwnerID: ownerID},
	}
}
