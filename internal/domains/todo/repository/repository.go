package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"tasknest/infras/otel"
	"tasknest/infras/postgres"
	projectRepo "tasknest/internal/domains/project/repository"
	"tasknest/internal/domains/todo/model"
	"tasknest/shared"
	"tasknest/shared/constant"
	gDto "tasknest/shared/dto"
	"tasknest/shared/logger"
	gRepo "tasknest/shared/repository"
	"tasknest/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const argExcludeID = "exclude_id"

var errRequiredFilter = errors.New("required filter")

type Todo interface {
	Insert(ctx context.Context, model model.Todo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ToggleStatus(ctx context.Context, filter gDto.FilterGroup, actor string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ToggleStatus flips pending and done in a single statement. It reports false when
// no row matched filter.
func (r *repositoryImpl) ToggleStatus(ctx context.Context, filter gDto.FilterGroup, actor string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.ToggleStatus")
	defer scope.End()

	where, args := r.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = CASE WHEN %s = '%s' THEN '%s' ELSE '%s' END, %s = :%s, %s = :%s %s",
		model.TableName,
		model.FieldStatus, model.FieldStatus, model.StatusPending, model.StatusDone, model.StatusPending,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		constant.FieldModifiedBy, constant.FieldModifiedBy,
		where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	})

	result, err := r.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to toggle status (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

// FilterOwned matches todoID only when its project belongs to ownerID.
func FilterOwned(todoID, ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    todoID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProjectID,
				Value:    projectRepo.OwnedIDs(ownerID),
				Operator: gDto.FilterOperatorInQuery,
				Table:    model.TableName,
			},
		},
	}
}

// FilterByProject matches every todo of projectID. Callers check project ownership first.
func FilterByProject(projectID string) gDto.FilterGroup {
	return shared.FilterByID(projectID, model.FieldProjectID, model.TableName)
}

// FilterByDescription matches the todo of projectID with description, ignoring excludeID when set.
func FilterByDescription(projectID, description, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldProjectID,
			Value:    projectID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldDescription,
			Value:    description,
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
