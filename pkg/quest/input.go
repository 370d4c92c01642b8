package quest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GoalInput carries already-parsed primitives from a menu or CLI.
type GoalInput struct {
	Kind        Kind   `validate:"required,oneof=Simple Eternal Checklist"`
	Name        string `validate:"required,max=120,singleline,notrailingbackslash"`
	Description string `validate:"max=500,singleline,notrailingbackslash"`
	Points      int    `validate:"gte=0"`
	Target      int    `validate:"required_if=Kind Checklist,gte=0"`
	Bonus       int    `validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	_ = v.RegisterValidation("notrailingbackslash", func(fl validator.FieldLevel) bool {
		return !strings.HasSuffix(fl.Field().String(), `\`)
	})
	return v
}

// ParseKind maps a user-facing selector ("simple", "2", "Checklist", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "simple":
		return KindSimple, nil
	case "2", "eternal":
		return KindEternal, nil
	case "3", "checklist":
		return KindChecklist, nil
	}
	return "", fmt.Errorf("unknown goal type %q (use simple, eternal or checklist)", s)
}

// InputError lists the GoalInput fields that failed validation, in declaration order.
type InputError struct {
	Fields   []string
	messages []string
}

func (e *InputError) Error() string {
	return "invalid goal: " + strings.Join(e.messages, "; ")
}

// Validate applies the menu-side rules. The core itself accepts any values.
// Rule violations are reported as *InputError.
func (in GoalInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ierr := &InputError{}
	for _, fe := range verrs {
		ierr.Fields = append(ierr.Fields, fe.Field())
		ierr.messages = append(ierr.messages, describeFieldError(fe))
	}
	return ierr
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "singleline":
		return field + " must be a single line"
	case "notrailingbackslash":
		return field + " must not end with a backslash"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of " + fe.Param()
	}
	return field + " failed " + fe.Tag()
}

// NewGoal builds the variant named by in.Kind without validating in.
func NewGoal(in GoalInput) (Goal, error) {
	switch in.Kind {
	case KindSimple:
		return NewSimpleGoal(in.Name, in.Description, in.Points), nil
	case KindEternal:
		return NewEternalGoal(in.Name, in.Description, in.Points), nil
	case KindChecklist:
		return NewChecklistGoal(in.Name, in.Description, in.Points, in.Target, in.Bonus), nil
	}
	return nil, fmt.Errorf("unknown goal kind %q", in.Kind)
}
