package constant

const (
	HOURS_MAX    = float64(1000)
	QUANTITY_MIN = 1
	QUANTITY_MAX = 1000

	PROJECT_STATUS_DRAFT     = "DRAFT"
	PROJECT_STATUS_ACTIVE    = "ACTIVE"
	PROJECT_STATUS_COMPLETED = "COMPLETED"
	PROJECT_STATUS_ARCHIVED  = "ARCHIVED"

	CONFIG_KEY_TIME_UNIT              = "time_unit"
	CONFIG_KEY_ROUNDING_PRECISION     = "rounding_precision"
	CONFIG_KEY_DEFAULT_PROJECT_STATUS = "default_project_status"
)

var (
	PROJECT_STATUSES = []string{
		PROJECT_STATUS_DRAFT,
		PROJECT_STATUS_ACTIVE,
		PROJECT_STATUS_COMPLETED,
		PROJECT_STATUS_ARCHIVED,
	}
)
