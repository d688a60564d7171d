package message

import (
	"testing"

	"github.com/aidee-health/embodycodec/errs"
	"github.com/stretchr/testify/require"
)

func TestListFilesResponseTwoEntries(t *testing.T) {
	in := ListFilesResponse{Entries: []FileEntry{
		{Name: "log0", Size: 100},
		{Name: "log1", Size: 200},
	}}

	body := encodeBody(t, in)
	require.Equal(t, 1+2*fileEntryWidth, len(body))
	require.Equal(t, uint8(2), body[0])

	out, err := decodeListFilesResponse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestListFilesResponseWrongLengthFails(t *testing.T) {
	body := encodeBody(t, ListFilesResponse{Entries: []FileEntry{{Name: "a", Size: 1}}})
	body = append(body, 0x00)

	_, err := decodeListFilesResponse(body)
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)
}

func TestGetFileUartRoundTrip(t *testing.T) {
	in := GetFileUart{Name: "capture.bin"}
	body := encodeBody(t, in)

	out, err := decodeGetFileUart(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGetFileUartResponsePayloadIsRemainder(t *testing.T) {
	in := GetFileUartResponse{Name: "a.bin", Size: 3, Payload: []byte{1, 2, 3}}
	body := encodeBody(t, in)

	out, err := decodeGetFileUartResponse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDeleteFileRoundTrip(t *testing.T) {
	in := DeleteFile{Name: "old.log"}
	body := encodeBody(t, in)

	out, err := decodeDeleteFile(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEmptyBodyFileMessages(t *testing.T) {
	_, err := decodeListFiles(nil)
	require.NoError(t, err)

	_, err = decodeDeleteAllFiles(nil)
	require.NoError(t, err)

	_, err = decodeReformatDisk(nil)
	require.NoError(t, err)

	_, err = decodeListFiles([]byte{0})
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)
}
