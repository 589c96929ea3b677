package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultClientName          = "Cliente"
	DefaultClientContact       = "-"
	DefaultBusinessName        = "Mi Negocio"
	DefaultListLimit           = 50
	DefaultBookingsRangeDays   = 30
	DefaultSlotsRangeDays      = 7
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 1440
	MinSlotIntervalMinutes    = 5
	MaxSlotIntervalMinutes    = 480
	MaxListLimit              = 200
	MaxNoteLength             = 500
	MaxCancelReasonLength     = 500
	MaxClientNameLength       = 120
	MaxClientContactLength    = 120
)

// Business code generation
const (
	CodeAlphabet       = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	CodeLength         = 8
	CodeFallbackLength = 10
	CodeAttempts       = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
