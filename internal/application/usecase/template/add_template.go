package template

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
)

// AddTemplateInput represents the input for template creation.
type AddTemplateInput struct {
	Name     string
	Amount   float64
	Category string
	Day      int
	Hour     string
	Minute   string
	AmPm     string
}

// AddTemplateOutput represents the output of template creation.
type AddTemplateOutput struct {
	Template *entity.RecurringExpense
}

// AddTemplateUseCase handles recurring template creation logic.
type AddTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewAddTemplateUseCase creates a new AddTemplateUseCase instance.
func NewAddTemplateUseCase(templateRepo adapter.TemplateRepository) *AddTemplateUseCase {
	return &AddTemplateUseCase{templateRepo: templateRepo}
}

// Execute performs the template creation. Templates are global; they only
// become expenses through month reconciliation or an explicit apply.
func (uc *AddTemplateUseCase) Execute(ctx context.Context, input AddTemplateInput) (*AddTemplateOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"template name must not be empty",
			domainerror.ErrMissingName,
		)
	}
	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"template amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Day < 1 || input.Day > 31 {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeInvalidTemplateDay,
			"template day must be between 1 and 31",
			domainerror.ErrInvalidTemplateDay,
		)
	}
	hour, minute, err := validateTemplateTime(input.Hour, input.Minute, input.AmPm)
	if err != nil {
		return nil, err
	}

	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	tmpl := entity.NewRecurringExpense(
		input.Name,
		input.Amount,
		entity.NormalizeCategory(input.Category),
		input.Day,
		fmt.Sprintf("%02d", hour),
		fmt.Sprintf("%02d", minute),
		input.AmPm,
	)
	templates = append(templates, tmpl)

	if err := uc.templateRepo.SaveTemplates(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save templates: %w", err)
	}

	return &AddTemplateOutput{Template: tmpl}, nil
}

func validateTemplateTime(hourStr, minuteStr, ampm string) (int, int, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"template hour must be between 1 and 12",
			domainerror.ErrInvalidTime,
		)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 55 || minute%5 != 0 {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"template minute must be a multiple of 5 between 0 and 55",
			domainerror.ErrInvalidTime,
		)
	}
	if ampm != entity.MeridiemAM && ampm != entity.MeridiemPM {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"template meridiem must be 'AM' or 'PM'",
			domainerror.ErrInvalidTime,
		)
	}
	return hour, minute, nil
}
