package constants

// Workflow status of a promoted survey record. The sync pipeline writes
// StatusPending once; every later transition belongs to the dashboard
// approval flow.
const (
	StatusPending          = "pending"
	StatusApproved         = "approved"
	StatusRejected         = "rejected"
	StatusRequestedForEdit = "requested_for_edit"
)

// RecordStatuses lists every value PATCH /status accepts.
var RecordStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusRequestedForEdit}

func IsValidRecordStatus(s string) bool {
	for _, v := range RecordStatuses {
		if v == s {
			return true
		}
	}
	return false
}
