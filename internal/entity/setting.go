package entity

import "github.com/questx-lab/questlog/pkg/enum"

type SettingScope string

var (
	// World settings are shared by every user and only a GM may change them.
	SettingScopeWorld = enum.New(SettingScope("world"))
	// Client settings are stored per user.
	SettingScopeClient = enum.New(SettingScope("client"))
)

type SettingType string

var (
	SettingTypeBool   = enum.New(SettingType("bool"))
	SettingTypeString = enum.New(SettingType("string"))
)
