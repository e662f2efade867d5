package constvars

const (
	QueryParamID             = "id"
	QueryParamClinicianID    = "clinicianId"
	QueryParamStartDate      = "startDate"
	QueryParamEndDate        = "endDate"
	QueryParamTab            = "tab"
	QueryParamIncludeProfile = "includeProfile"
	QueryParamIncludeAddress = "includeAddress"
)

const (
	URLParamClientGroupID = "client_group_id"
	URLParamClientID      = "client_id"
)
