package dispatch

import (
	"encoding/json"

	"pushhub/models"
)

// Payload is the structured push message delivered identically to every
// subscriber of the client in one dispatch. The tag lets the browser
// de-duplicate and group displays of the same notification.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`
	Tag   string `json:"tag"`
	URL   string `json:"url,omitempty"`
}

// PayloadTagPrefix namespaces notification tags on the client side.
const PayloadTagPrefix = "pushhub-"

// BuildPayload serializes the outbound message for one notification.
// iconURL comes from the client's branding and may be empty.
func BuildPayload(iconURL string, notif models.Notification) ([]byte, error) {
	return json.Marshal(Payload{
		Title: notif.Title,
		Body:  notif.Body,
		Icon:  iconURL,
		Image: notif.ImageURL,
		Tag:   PayloadTagPrefix + notif.ID,
		URL:   notif.TargetURL,
	})
}
