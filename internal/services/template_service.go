package services

import (
	"context"
	"strings"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/store"
	"weekplan/internal/validation"
)

type templateServiceImpl struct {
	store     *store.Store
	validator *validation.ScheduleValidator
}

func NewTemplateService(s *store.Store, v *validation.Validator) TemplateService {
	return &templateServiceImpl{store: s, validator: validation.NewScheduleValidator(v)}
}

func (t *templateServiceImpl) List() []domain.Template {
	return t.store.Templates()
}

// Add appends tpl to the end of the list.
func (t *templateServiceImpl) Add(ctx context.Context, tpl domain.Template) error {
	tpl.Activity = strings.TrimSpace(tpl.Activity)
	if err := t.validator.ValidateTemplate(tpl); err != nil {
		return errors.NewValidationError("invalid template", err)
	}
	return t.store.SaveTemplates(ctx, append(t.store.Templates(), tpl))
}

func (t *templateServiceImpl) Get(index int) (domain.Template, error) {
	templates := t.store.Templates()
	if index < 0 || index >= len(templates) {
		return domain.Template{}, errors.NewInvalidInputError("template", index, "no template at that position")
	}
	return templates[index], nil
}
