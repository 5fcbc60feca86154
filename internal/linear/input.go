package linear

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTitleLength is the longest issue title accepted before a mutation is sent.
const MaxTitleLength = 500

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their GraphQL names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// IssueCreateInput is the payload of the issueCreate mutation.
type IssueCreateInput struct {
	TeamID      string   `json:"teamId" validate:"required"`
	Title       string   `json:"title" validate:"required,max=500"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty" validate:"min=0,max=4"`
	StateID     string   `json:"stateId,omitempty"`
	AssigneeID  string   `json:"assigneeId,omitempty"`
	LabelIDs    []string `json:"labelIds,omitempty" validate:"omitempty,dive,required"`
}

// Validate checks the input before it is sent.
func (in *IssueCreateInput) Validate() error {
	return validationError(validate.Struct(in))
}

// IssueUpdateInput is the payload of the issueUpdate mutation. Nil fields are
// left unchanged. An empty AssigneeID unassigns the issue; a non-nil empty
// LabelIDs clears every label.
type IssueUpdateInput struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=500"`
	Description *string  `json:"description"`
	Priority    *int     `json:"priority" validate:"omitnil,min=0,max=4"`
	StateID     *string  `json:"stateId" validate:"omitnil,min=1"`
	AssigneeID  *string  `json:"assigneeId"`
	LabelIDs    []string `json:"labelIds" validate:"omitempty,dive,required"`
}

// Validate checks the input before it is sent.
func (in *IssueUpdateInput) Validate() error {
	if in.IsEmpty() {
		return errors.New("no updates specified")
	}
	return validationError(validate.Struct(in))
}

// IsEmpty reports whether the input would change nothing.
func (in *IssueUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Priority == nil &&
		in.StateID == nil && in.AssigneeID == nil && in.LabelIDs == nil
}

// Fields returns the GraphQL input object holding only the set fields.
func (in *IssueUpdateInput) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Priority != nil {
		fields["priority"] = *in.Priority
	}
	if in.StateID != nil {
		fields["stateId"] = *in.StateID
	}
	if in.AssigneeID != nil {
		if *in.AssigneeID == "" {
			fields["assigneeId"] = nil
		} else {
			fields["assigneeId"] = *in.AssigneeID
		}
	}
	if in.LabelIDs != nil {
		fields["labelIds"] = in.LabelIDs
	}
	return fields
}

// validationError flattens validator output into one readable error.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid issue input: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return field + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
