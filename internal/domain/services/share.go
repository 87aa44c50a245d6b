package services

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

// SharePath is the client-side route a share token is appended to.
const SharePath = "/#/share/"

// requiredFields are the top-level keys a shared record must carry.
var requiredFields = []string{
	"id", "name", "currentHp", "currentMana",
	"attributes", "powers", "skills", "talents", "inventory",
}

var attributeKeys = []string{
	"force", "intelligence", "agility", "life", "accuracy",
	"mana", "stealth", "evasion", "physicalDefense", "magicDefense",
}

// ShareService turns a single character into a self-contained URL token and back.
type ShareService struct {
	origin string
}

// NewShareService creates a new ShareService producing links under origin.
func NewShareService(origin string) *ShareService {
	return &ShareService{
		origin: strings.TrimRight(origin, "/"),
	}
}

// Encode serializes c into an unpadded URL-safe base64 token.
func (s *ShareService) Encode(c entities.Character) string {
	data, err := json.Marshal(c)
	if err != nil {
		// unreachable: every field of Character has a total JSON encoding
		panic("sharing: encoding character: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// Link returns the share URL for c.
func (s *ShareService) Link(c entities.Character) string {
	return s.origin + SharePath + s.Encode(c)
}

// Decode recovers a character from a token. The token may be URL-safe or
// standard base64, padded or not. Structurally incomplete records are
// rejected; no partial record is ever returned.
func (s *ShareService) Decode(token string) (*entities.Character, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, oops.Code(entities.CodeShareDecode).Errorf("share token is empty")
	}

	data, err := decodeBase64(token)
	if err != nil {
		return nil, oops.Code(entities.CodeShareDecode).Wrapf(err, "share token is not valid base64")
	}
	if !utf8.Valid(data) {
		data = latin1ToUTF8(data)
	}
	return s.DecodeJSON(data)
}

// DecodeJSON recovers a character from its JSON encoding, applying the same
// structural checks as Decode.
func (s *ShareService) DecodeJSON(data []byte) (*entities.Character, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, oops.Code(entities.CodeShareDecode).Wrapf(err, "shared record is not a character")
	}
	if err := checkFields(fields); err != nil {
		return nil, err
	}

	var c entities.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, oops.Code(entities.CodeShareDecode).Wrapf(err, "shared record is not a character")
	}
	return &c, nil
}

// TokenFromLink extracts the token from a share URL. A bare token is
// returned unchanged.
func (s *ShareService) TokenFromLink(link string) string {
	link = strings.TrimSpace(link)
	i := strings.Index(link, SharePath)
	if i < 0 {
		if u, err := url.Parse(link); err == nil && strings.HasPrefix(u.Fragment, "/share/") {
			return strings.TrimPrefix(u.Fragment, "/share/")
		}
		return link
	}
	return link[i+len(SharePath):]
}

func decodeBase64(token string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}
	var firstErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(token)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// latin1ToUTF8 reinterprets bytes as Latin-1 code points. Tokens made by a
// browser's btoa carry Latin-1, not UTF-8.
func latin1ToUTF8(data []byte) []byte {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = utf8.AppendRune(out, rune(b))
	}
	return out
}

func checkFields(fields map[string]json.RawMessage) error {
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return oops.Code(entities.CodeShareDecode).With("field", key).Errorf("shared character is missing %q", key)
		}
	}
	if err := checkString(fields["id"], "id", false); err != nil {
		return err
	}
	if err := checkString(fields["name"], "name", true); err != nil {
		return err
	}
	if err := checkObject(fields["attributes"], "attributes", attributeKeys); err != nil {
		return err
	}
	return checkObject(fields["powers"], "powers", entities.PowerKeys)
}

// checkString rejects a field that is null or not a string. The id must
// also be non-blank so the record can be stored and selected.
func checkString(raw json.RawMessage, name string, allowEmpty bool) error {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return oops.Code(entities.CodeShareDecode).With("field", name).Errorf("shared %s must be a string", name)
	}
	if !allowEmpty && strings.TrimSpace(*v) == "" {
		return oops.Code(entities.CodeShareDecode).With("field", name).Errorf("shared %s is empty", name)
	}
	return nil
}

func checkObject(raw json.RawMessage, name string, keys []string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return oops.Code(entities.CodeShareDecode).With("field", name).Wrapf(err, "shared %s is not an object", name)
	}
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return oops.Code(entities.CodeShareDecode).With("field", name+"."+key).Errorf("shared %s is missing %q", name, key)
		}
	}
	return nil
}
