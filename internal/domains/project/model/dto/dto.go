package dto

import (
	"tasknest/internal/domains/project/model"
	gDto "tasknest/shared/dto"
	gModel "tasknest/shared/model"
	"tasknest/shared/sanitizer"
	"tasknest/shared/timezone"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

func (r *CreateProjectRequest) Sanitize() {
	sanitizer.Strings(&r.Title)
}

func (r *CreateProjectRequest) ToModel(ownerID string) model.Project {
	return model.Project{
		ID:       uuid.NewString(),
		Title:    r.Title,
		OwnerID:  ownerID,
		Metadata: gModel.NewMetadata(ownerID, timezone.Now()),
	}
}

type UpdateProjectRequest struct {
	Title string `db:"title" json:"title" validate:"required,notblank,max=255"`
}

func (r *UpdateProjectRequest) Sanitize() {
	sanitizer.Strings(&r.Title)
}

type ProjectResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Title = model.Title
	r.OwnerID = model.OwnerID
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project) {
	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
