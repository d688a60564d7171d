package message

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
)

const fileNameWidth = 16

// FileEntry describes one file in a ListFilesResponse: a null-padded ASCII
// name and its size in bytes. Its wire width is fixed at 20 bytes
// (16-byte name + u32 size).
type FileEntry struct {
	Name string
	Size uint32
}

const fileEntryWidth = fileNameWidth + 4

// ListFiles requests the device's file directory. Its body is always
// empty.
type ListFiles struct{}

func (ListFiles) Type() TypeCode                  { return TypeListFiles }
func (ListFiles) bodyLen() (int, error)           { return 0, nil }
func (ListFiles) encodeBody(*cursor.Writer) error { return nil }

func decodeListFiles(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return ListFiles{}, nil
}

// ListFilesResponse enumerates the device's files. The entry count is
// carried as a single u8 prefix ahead of the fixed-width entries (see
// the two-entry response: "02 <name0> <size0> <name1> <size1>").
type ListFilesResponse struct {
	Entries []FileEntry
}

func (ListFilesResponse) Type() TypeCode { return TypeListFilesResponse }

func (m ListFilesResponse) bodyLen() (int, error) {
	return 1 + len(m.Entries)*fileEntryWidth, nil
}

func (m ListFilesResponse) encodeBody(w *cursor.Writer) error {
	if len(m.Entries) > 0xFF {
		return errs.RangeError("entry_count", len(m.Entries))
	}

	w.WriteU8(uint8(len(m.Entries)))

	for _, e := range m.Entries {
		if err := w.WriteFixedString(e.Name, fileNameWidth, "name"); err != nil {
			return err
		}

		w.WriteU32(e.Size)
	}

	return nil
}

func decodeListFilesResponse(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	count, err := r.ReadU8("entry_count")
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, count)

	for i := uint8(0); i < count; i++ {
		name, err := r.ReadFixedString(fileNameWidth, "name")
		if err != nil {
			return nil, err
		}

		size, err := r.ReadU32("size")
		if err != nil {
			return nil, err
		}

		entries = append(entries, FileEntry{Name: name, Size: size})
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return ListFilesResponse{Entries: entries}, nil
}

// GetFileUart requests that the device stream Name's contents over UART.
type GetFileUart struct {
	Name string
}

func (GetFileUart) Type() TypeCode        { return TypeGetFileUart }
func (GetFileUart) bodyLen() (int, error) { return fileNameWidth, nil }

func (m GetFileUart) encodeBody(w *cursor.Writer) error {
	return w.WriteFixedString(m.Name, fileNameWidth, "name")
}

func decodeGetFileUart(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	name, err := r.ReadFixedString(fileNameWidth, "name")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return GetFileUart{Name: name}, nil
}

// GetFileUartResponse carries a chunk (or the whole) of a requested file.
// Payload has no inner length prefix: its length is whatever remains of
// the frame body after the fixed name/size header, per spec.
type GetFileUartResponse struct {
	Name    string
	Size    uint32
	Payload []byte
}

func (GetFileUartResponse) Type() TypeCode { return TypeGetFileUartResponse }

func (m GetFileUartResponse) bodyLen() (int, error) {
	return fileNameWidth + 4 + len(m.Payload), nil
}

func (m GetFileUartResponse) encodeBody(w *cursor.Writer) error {
	if err := w.WriteFixedString(m.Name, fileNameWidth, "name"); err != nil {
		return err
	}

	w.WriteU32(m.Size)
	w.WriteBytes(m.Payload)

	return nil
}

func decodeGetFileUartResponse(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	name, err := r.ReadFixedString(fileNameWidth, "name")
	if err != nil {
		return nil, err
	}

	size, err := r.ReadU32("size")
	if err != nil {
		return nil, err
	}

	payload, err := r.ReadBytes(r.Remaining(), "payload")
	if err != nil {
		return nil, err
	}

	return GetFileUartResponse{Name: name, Size: size, Payload: payload}, nil
}

// DeleteFile removes Name from the device's filesystem.
type DeleteFile struct {
	Name string
}

func (DeleteFile) Type() TypeCode        { return TypeDeleteFile }
func (DeleteFile) bodyLen() (int, error) { return fileNameWidth, nil }

func (m DeleteFile) encodeBody(w *cursor.Writer) error {
	return w.WriteFixedString(m.Name, fileNameWidth, "name")
}

func decodeDeleteFile(body []byte) (Message, error) {
	r := cursor.NewReader(body)

	name, err := r.ReadFixedString(fileNameWidth, "name")
	if err != nil {
		return nil, err
	}

	if err := requireConsumedAll(r); err != nil {
		return nil, err
	}

	return DeleteFile{Name: name}, nil
}

// DeleteAllFiles removes every file on the device. Its body is always
// empty.
type DeleteAllFiles struct{}

func (DeleteAllFiles) Type() TypeCode                  { return TypeDeleteAllFiles }
func (DeleteAllFiles) bodyLen() (int, error)           { return 0, nil }
func (DeleteAllFiles) encodeBody(*cursor.Writer) error { return nil }

func decodeDeleteAllFiles(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return DeleteAllFiles{}, nil
}

// ReformatDisk wipes and reformats the device's storage. Its body is
// always empty.
type ReformatDisk struct{}

func (ReformatDisk) Type() TypeCode                  { return TypeReformatDisk }
func (ReformatDisk) bodyLen() (int, error)           { return 0, nil }
func (ReformatDisk) encodeBody(*cursor.Writer) error { return nil }

func decodeReformatDisk(body []byte) (Message, error) {
	if err := requireEmptyBody(body); err != nil {
		return nil, err
	}

	return ReformatDisk{}, nil
}
