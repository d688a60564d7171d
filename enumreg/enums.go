package enumreg

// FirmwareState is the firmware-update state machine reported by
// FirmwareUpdate messages.
type FirmwareState uint8

const (
	FirmwareIdle FirmwareState = iota
	FirmwareDownloading
	FirmwareVerifying
	FirmwareApplying
	FirmwareRebooting
	FirmwareFailed
)

func (s FirmwareState) String() string {
	switch s {
	case FirmwareIdle:
		return "idle"
	case FirmwareDownloading:
		return "downloading"
	case FirmwareVerifying:
		return "verifying"
	case FirmwareApplying:
		return "applying"
	case FirmwareRebooting:
		return "rebooting"
	case FirmwareFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FirmwareStates is the registry table for FirmwareState.
var FirmwareStates = NewTable("firmware_state", map[uint8]FirmwareState{
	0: FirmwareIdle,
	1: FirmwareDownloading,
	2: FirmwareVerifying,
	3: FirmwareApplying,
	4: FirmwareRebooting,
	5: FirmwareFailed,
})

// ChargeState is the battery charge state reported by the charge_state
// attribute.
type ChargeState uint8

const (
	ChargeUnknown ChargeState = iota
	ChargeDischarging
	ChargeCharging
	ChargeFull
)

func (s ChargeState) String() string {
	switch s {
	case ChargeUnknown:
		return "unknown"
	case ChargeDischarging:
		return "discharging"
	case ChargeCharging:
		return "charging"
	case ChargeFull:
		return "full"
	default:
		return "unknown"
	}
}

// ChargeStates is the registry table for ChargeState.
var ChargeStates = NewTable("charge_state", map[uint8]ChargeState{
	0: ChargeUnknown,
	1: ChargeDischarging,
	2: ChargeCharging,
	3: ChargeFull,
})

// BLEPairingState is the Bluetooth LE pairing state reported by the
// ble_pairing_state attribute.
type BLEPairingState uint8

const (
	BLEUnpaired BLEPairingState = iota
	BLEPairing
	BLEPaired
	BLEPairingFailed
)

func (s BLEPairingState) String() string {
	switch s {
	case BLEUnpaired:
		return "unpaired"
	case BLEPairing:
		return "pairing"
	case BLEPaired:
		return "paired"
	case BLEPairingFailed:
		return "pairing_failed"
	default:
		return "unknown"
	}
}

// BLEPairingStates is the registry table for BLEPairingState.
var BLEPairingStates = NewTable("ble_pairing_state", map[uint8]BLEPairingState{
	0: BLEUnpaired,
	1: BLEPairing,
	2: BLEPaired,
	3: BLEPairingFailed,
})

// FileKind classifies a file on the device's filesystem.
type FileKind uint8

const (
	FileKindLog FileKind = iota
	FileKindConfig
	FileKindFirmwareImage
	FileKindDiagnostic
)

func (k FileKind) String() string {
	switch k {
	case FileKindLog:
		return "log"
	case FileKindConfig:
		return "config"
	case FileKindFirmwareImage:
		return "firmware_image"
	case FileKindDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

// FileKinds is the registry table for FileKind.
var FileKinds = NewTable("file_kind", map[uint8]FileKind{
	0: FileKindLog,
	1: FileKindConfig,
	2: FileKindFirmwareImage,
	3: FileKindDiagnostic,
})

// ReportingTriggerMode selects when a configured attribute is reported.
type ReportingTriggerMode uint8

const (
	ReportingOnChange ReportingTriggerMode = iota
	ReportingPeriodic
	ReportingBoth
)

func (m ReportingTriggerMode) String() string {
	switch m {
	case ReportingOnChange:
		return "on_change"
	case ReportingPeriodic:
		return "periodic"
	case ReportingBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ReportingTriggerModes is the registry table for ReportingTriggerMode.
var ReportingTriggerModes = NewTable("reporting_trigger_mode", map[uint8]ReportingTriggerMode{
	0: ReportingOnChange,
	1: ReportingPeriodic,
	2: ReportingBoth,
})
