package constvars

const (
	AppointmentTypeAppointment = "appointment"
	AppointmentTypeEvent       = "event"

	AppointmentClientTypeIndividual = "individual"
	AppointmentClientTypeGroup      = "group"

	AppointmentDefaultLocation = "sp"
	AppointmentDefaultStatus   = "pending"

	AppointmentTimeLayout = "3:04 PM"

	AppointmentDefaultDurationInMinutes = 30
)

const (
	ClientGroupTabGroupInfo = "group-info"
	ClientGroupTabClients   = "clients"
	ClientGroupTabBilling   = "billing"

	ClientGroupEditPagePathFormat = "/clients/%s/edit"
)

const (
	ClientGroupTypeAdult  = "adult"
	ClientGroupTypeMinor  = "minor"
	ClientGroupTypeCouple = "couple"
	ClientGroupTypeFamily = "family"
)

const (
	DiagnosisFieldCode        = "code"
	DiagnosisFieldDescription = "description"

	DiagnosisRowActionAdd    = "add"
	DiagnosisRowActionRemove = "remove"
	DiagnosisRowActionUpdate = "update"

	DiagnosisDateLayout = "2006-01-02"
	DiagnosisTimeLayout = "15:04"
)
