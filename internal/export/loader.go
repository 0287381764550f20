package export

import (
	"encoding/json"
	"os"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
	"github.com/whoamihappyhacking/tgstat/internal/model"
)

// Load reads and decodes a Telegram export file (result.json).
func Load(path string) (*model.ChatExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidChatExport(err)
	}
	return Parse(data)
}

// Parse decodes an export document. The messages field is kept raw; the
// analyzer validates it is a sequence.
func Parse(data []byte) (*model.ChatExport, error) {
	var export model.ChatExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, errors.InvalidChatExport(err)
	}
	return &export, nil
}
