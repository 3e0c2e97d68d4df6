package core

import (
	"errors"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
)

// ErrForbiddenScope is returned when a viewer acts on an appointment outside
// their role's clinic/service scope.
var ErrForbiddenScope = errors.New("viewer does not have access to this appointment")

// Viewer is the resolved identity of the caller: the Firebase UID plus the
// Role parsed once at session load.
type Viewer struct {
	UserID string
	Role   models.Role
}

// filterFor maps a viewer onto the store-side appointment filter for their
// dashboard. Owners see their own documents; clinic staff see their clinic;
// boarding and training staff see their service tag; admin sees everything.
func filterFor(v Viewer) db.AppointmentFilter {
	switch {
	case v.Role == models.RoleAdmin:
		return db.AppointmentFilter{}
	case v.Role.Clinic() != 0:
		return db.AppointmentFilter{Clinic: v.Role.Clinic()}
	case v.Role == models.RoleBoarding || v.Role == models.RoleBoarding2:
		return db.AppointmentFilter{Service: models.ServiceBoarding}
	case v.Role == models.RoleTraining:
		return db.AppointmentFilter{Service: models.ServiceTraining}
	default:
		return db.AppointmentFilter{OwnerID: v.UserID}
	}
}

// inScope reports whether the viewer may act on the appointment.
func inScope(v Viewer, appt *models.Appointment) bool {
	switch {
	case v.Role == models.RoleAdmin:
		return true
	case v.Role.Clinic() != 0:
		return appt.Clinic == v.Role.Clinic()
	case v.Role == models.RoleBoarding || v.Role == models.RoleBoarding2:
		return hasService(appt, models.ServiceBoarding)
	case v.Role == models.RoleTraining:
		return hasService(appt, models.ServiceTraining)
	default:
		return appt.OwnerID == v.UserID
	}
}

func hasService(appt *models.Appointment, s models.Service) bool {
	for _, svc := range appt.Services {
		if svc == s {
			return true
		}
	}
	return false
}
