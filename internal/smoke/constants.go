package smoke

import "time"

// Response encodings understood by the client.
const (
	FormatJSON    = "json"
	FormatMsgPack = "msgpack"

	contentTypeMsgPack = "application/x-msgpack"
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	DefaultTimeout       = 10 * time.Second
	PercentageMultiplier = 100
	maxFailuresLogged    = 20
)

// Languages the service publishes city tables for, plus one it must reject.
var (
	checkedLanguages    = []string{"kurdish", "arabic"}
	unsupportedLanguage = "english"
)
