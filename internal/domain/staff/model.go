package staff

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleReferee   Role = "referee"
	RoleOrganizer Role = "organizer"
	RoleMedic     Role = "medic"
	RoleCoach     Role = "coach"
)

var ErrInvalidStaff = errors.New("invalid staff member")

// Member is a tournament official listed on the public site.
type Member struct {
	ID    string
	Name  string
	Role  Role
	Phone string
}

func (m Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidStaff)
	}
	switch m.Role {
	case RoleReferee, RoleOrganizer, RoleMedic, RoleCoach:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidStaff, m.Role)
	}
	return nil
}
