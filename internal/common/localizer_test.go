package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageLocalizer_Localize(t *testing.T) {
	en := NewMessageLocalizer("en")
	require.Equal(t, "Completed", en.Localize(StatusLabelKeyPrefix+"completed"))
	require.Equal(t, "In Progress", en.Localize(StatusLabelKeyPrefix+"active"))
	require.Equal(t, "unknown.key", en.Localize("unknown.key"))

	ptBR := NewMessageLocalizer("pt-BR")
	require.Equal(t, "Concluída", ptBR.Localize(StatusLabelKeyPrefix+"completed"))

	invalid := NewMessageLocalizer("not a locale")
	require.Equal(t, "Failed", invalid.Localize(StatusLabelKeyPrefix+"failed"))
}

func TestSortNames(t *testing.T) {
	names := []string{"zoe", "Émile", "adam", "Bruno"}
	SortNames("en", names)
	require.Equal(t, []string{"adam", "Bruno", "Émile", "zoe"}, names)
}
