package store

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RelationRef points at a group or tag: either a new one to create by
// name, or an existing one by id.
type RelationRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsNew bool   `json:"isNew"`
}

type CreateImageInput struct {
	Name     string        `json:"name" validate:"required"`
	Src      string        `json:"url" validate:"required,max=1024,url"`
	Comments string        `json:"comments"`
	Group    *RelationRef  `json:"group"`
	Tags     []RelationRef `json:"tags"`
}

type UpdateImageInput struct {
	ID       string        `json:"id" validate:"required"`
	Name     string        `json:"name" validate:"required"`
	Comments string        `json:"comments"`
	Group    *RelationRef  `json:"group"`
	Tags     []RelationRef `json:"tags"`
}

type CreatePaletteInput struct {
	Name     string        `json:"name" validate:"required"`
	Colors   []string      `json:"colors" validate:"required,min=1,dive,required"`
	Comments string        `json:"comments"`
	Group    *RelationRef  `json:"group"`
	Tags     []RelationRef `json:"tags"`
}

type UpdatePaletteInput struct {
	ID       string        `json:"id" validate:"required"`
	Name     string        `json:"name" validate:"required"`
	Colors   []string      `json:"colors" validate:"required,min=1,dive,required"`
	Comments string        `json:"comments"`
	Group    *RelationRef  `json:"group"`
	Tags     []RelationRef `json:"tags"`
}

// Validate runs struct validation and converts the first failure into a
// ValidationError. Exported so handlers can reuse it for request
// shapes that never reach the store.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{Message: "invalid value for " + errs[0].Field()}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

func trimRef(ref *RelationRef) {
	if ref == nil {
		return
	}
	ref.ID = strings.TrimSpace(ref.ID)
	ref.Name = strings.TrimSpace(ref.Name)
}

func trimRefs(refs []RelationRef) {
	for i := range refs {
		trimRef(&refs[i])
	}
}

// checkRefs enforces the tagged-variant shape before any storage call:
// a new group/tag must carry a name, an existing tag must carry an id.
// An existing group with an empty id means "no group".
func checkRefs(group *RelationRef, tags []RelationRef) error {
	if group != nil && group.IsNew && group.Name == "" {
		return &ValidationError{Message: "group name is required"}
	}
	for _, ref := range tags {
		if ref.IsNew {
			if ref.Name == "" {
				return &ValidationError{Message: "tag name is required"}
			}
		} else if ref.ID == "" {
			return &ValidationError{Message: "invalid tag reference"}
		}
	}
	return nil
}

func (in *CreateImageInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Src = strings.TrimSpace(in.Src)
	in.Comments = strings.TrimSpace(in.Comments)
	trimRef(in.Group)
	trimRefs(in.Tags)
}

func (in *UpdateImageInput) normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Comments = strings.TrimSpace(in.Comments)
	trimRef(in.Group)
	trimRefs(in.Tags)
}

func (in *CreatePaletteInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Comments = strings.TrimSpace(in.Comments)
	trimRef(in.Group)
	trimRefs(in.Tags)
}

func (in *UpdatePaletteInput) normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Comments = strings.TrimSpace(in.Comments)
	trimRef(in.Group)
	trimRefs(in.Tags)
}
