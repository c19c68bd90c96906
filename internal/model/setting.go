package model

type Setting struct {
	Name    string   `json:"name"`
	Scope   string   `json:"scope"`
	Type    string   `json:"type"`
	Value   any      `json:"value"`
	Default any      `json:"default"`
	Choices []string `json:"choices,omitempty"`
}

type GetSettingRequest struct {
	Name string `json:"name"`
}

type GetSettingResponse Setting

type GetListSettingRequest struct{}

type GetListSettingResponse struct {
	Settings []Setting `json:"settings"`
}

type UpdateSettingRequest struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type UpdateSettingResponse struct{}

// SettingChangedEvent is published after a setting value is stored so renderers can refresh.
type SettingChangedEvent struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Value     any    `json:"value"`
	ChangedBy string `json:"changed_by"`
	// RerenderAll tells listeners every open quest view must be rebuilt, not only the quest log.
	RerenderAll bool `json:"rerender_all"`
}

const SettingChangedTopic = "questlog.setting_changed"
