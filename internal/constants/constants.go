package constants

// TaskStatus is the lifecycle state recorded on an assignment's status
// record. Values match the legacy database encoding.
type TaskStatus int

const (
	StatusPending    TaskStatus = 1
	StatusInProgress TaskStatus = 2
	StatusCompleted  TaskStatus = 3
)

var statusNames = map[TaskStatus]string{
	StatusPending:    "Pending",
	StatusInProgress: "InProgress",
	StatusCompleted:  "Completed",
}

func (s TaskStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s TaskStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus resolves a status label to its enum value.
func ParseStatus(name string) (TaskStatus, bool) {
	for status, label := range statusNames {
		if label == name {
			return status, true
		}
	}
	return 0, false
}

// TaskPriority ranks tasks. Lower value means more urgent.
type TaskPriority int

const (
	PriorityHigh   TaskPriority = 1
	PriorityMedium TaskPriority = 2
	PriorityLow    TaskPriority = 3
)

var priorityNames = map[TaskPriority]string{
	PriorityHigh:   "High",
	PriorityMedium: "Medium",
	PriorityLow:    "Low",
}

func (p TaskPriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

func (p TaskPriority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func ParsePriority(name string) (TaskPriority, bool) {
	for priority, label := range priorityNames {
		if label == name {
			return priority, true
		}
	}
	return 0, false
}

// User roles. Managers and Members always carry a CreatedBy reference to
// the account that provisioned them.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleMember  = "Member"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleMember
}
