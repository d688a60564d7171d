package message

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
)

var typeNames = map[TypeCode]string{
	TypeHeartbeat:              "heartbeat",
	TypeHeartbeatResponse:      "heartbeat_response",
	TypeNackResponse:           "nack_response",
	TypeSetAttribute:           "set_attribute",
	TypeSetAttributeResponse:   "set_attribute_response",
	TypeGetAttribute:           "get_attribute",
	TypeGetAttributeResponse:   "get_attribute_response",
	TypeResetAttribute:         "reset_attribute",
	TypeConfigureReporting:     "configure_reporting",
	TypeResetReporting:         "reset_reporting",
	TypePeriodicAttribute:      "periodic_attribute",
	TypeListFiles:              "list_files",
	TypeListFilesResponse:      "list_files_response",
	TypeGetFileUart:            "get_file_uart",
	TypeGetFileUartResponse:    "get_file_uart_response",
	TypeDeleteFile:             "delete_file",
	TypeDeleteAllFiles:         "delete_all_files",
	TypeReformatDisk:           "reformat_disk",
	TypeExecuteCommand:         "execute_command",
	TypeExecuteCommandResponse: "execute_command_response",
	TypeFirmwareUpdate:         "firmware_update",
	TypeAlarmEvent:             "alarm_event",
	TypeRawPulseChanged:        "raw_pulse_changed",
	TypeSensorData:             "sensor_data",
}

// decoders is the type_code → decoder dispatch table. It is built once
// at init and never mutated, the same shape as enumreg.Table's static
// bijection.
var decoders = map[TypeCode]func(body []byte) (Message, error){
	TypeHeartbeat:              decodeHeartbeat,
	TypeHeartbeatResponse:      decodeHeartbeatResponse,
	TypeNackResponse:           decodeNackResponse,
	TypeSetAttribute:           decodeSetAttribute,
	TypeSetAttributeResponse:   decodeSetAttributeResponse,
	TypeGetAttribute:           decodeGetAttribute,
	TypeGetAttributeResponse:   decodeGetAttributeResponse,
	TypeResetAttribute:         decodeResetAttribute,
	TypeConfigureReporting:     decodeConfigureReporting,
	TypeResetReporting:         decodeResetReporting,
	TypePeriodicAttribute:      decodePeriodicAttribute,
	TypeListFiles:              decodeListFiles,
	TypeListFilesResponse:      decodeListFilesResponse,
	TypeGetFileUart:            decodeGetFileUart,
	TypeGetFileUartResponse:    decodeGetFileUartResponse,
	TypeDeleteFile:             decodeDeleteFile,
	TypeDeleteAllFiles:         decodeDeleteAllFiles,
	TypeReformatDisk:           decodeReformatDisk,
	TypeExecuteCommand:         decodeExecuteCommand,
	TypeExecuteCommandResponse: decodeExecuteCommandResponse,
	TypeFirmwareUpdate:         decodeFirmwareUpdate,
	TypeAlarmEvent:             decodeAlarmEvent,
	TypeRawPulseChanged:        decodeRawPulseChanged,
	TypeSensorData:             decodeSensorData,
}

// DecodeBody looks up the decoder registered for typ and applies it to
// body, implementing the type_code → decoder dispatch. An unregistered
// typ reports ErrUnknownMessageType rather than panicking,
// since a frame with an unrecognized type code is ordinary wire input, not
// a programmer error.
func DecodeBody(typ TypeCode, body []byte) (Message, error) {
	decode, ok := decoders[typ]
	if !ok {
		return nil, errs.UnknownMessageType(uint8(typ))
	}

	return decode(body)
}

// EncodeBody sizes and encodes m's body. It computes the body length up
// front via m.bodyLen() — which can fail for attribute-bearing variants
// referencing an id outside the Attribute Registry — before allocating the
// output buffer, so a sizing failure never leaves a partially written
// buffer behind.
func EncodeBody(m Message) ([]byte, error) {
	n, err := m.bodyLen()
	if err != nil {
		return nil, err
	}

	w := cursor.NewWriter(n)
	if err := m.encodeBody(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}
