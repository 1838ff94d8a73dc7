package domain

type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "pending"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:    {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed:  {AppointmentInProgress, AppointmentCancelled},
	AppointmentInProgress: {AppointmentCompleted},
}

// CanTransition reports whether a provider may move an appointment from one status to another.
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	st := AppointmentStatus(s)
	switch st {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		return st, nil
	}
	return "", ValidationError{Field: "status", Msg: "unknown status"}
}
