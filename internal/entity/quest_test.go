package entity

import (
	"testing"

	"github.com/questx-lab/questlog/internal/model"
	"github.com/stretchr/testify/require"
)

func Test_Quest_GiverRef(t *testing.T) {
	tests := []struct {
		name  string
		quest Quest
		want  GiverRef
	}{
		{name: "no giver", quest: Quest{}, want: nil},
		{
			name:  "abstract",
			quest: Quest{Giver: AbstractGiverValue, GiverName: "Mira", Image: "mira.png"},
			want:  AbstractGiver{Name: "Mira", Image: "mira.png"},
		},
		{
			name:  "reference",
			quest: Quest{Giver: "Actor.abc", Image: "token"},
			want:  ReferenceGiver{UUID: "Actor.abc", ImageKind: "token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.quest.GiverRef())
		})
	}
}

func Test_Quest_IsObservable(t *testing.T) {
	quest := Quest{
		DefaultPermission: PermissionNone,
		Ownership:         Map{"owner": "OWNER", "observer": "OBSERVER", "blocked": "NONE"},
	}

	require.True(t, quest.IsObservable(model.Viewer{UserID: "anyone", IsGM: true}))
	require.True(t, quest.IsObservable(model.Viewer{UserID: "owner"}))
	require.True(t, quest.IsObservable(model.Viewer{UserID: "observer"}))
	require.False(t, quest.IsObservable(model.Viewer{UserID: "blocked"}))
	require.False(t, quest.IsObservable(model.Viewer{UserID: "stranger"}))
	require.False(t, quest.IsObservable(model.Viewer{}))

	quest.DefaultPermission = PermissionObserver
	require.True(t, quest.IsObservable(model.Viewer{UserID: "stranger"}))
	require.False(t, quest.IsObservable(model.Viewer{UserID: "blocked"}))
}

func Test_Array_Scan(t *testing.T) {
	var tasks Array[Task]
	require.NoError(t, tasks.Scan([]byte(`[{"name":"a","completed":true}]`)))
	require.Equal(t, Array[Task]{{Name: "a", Completed: true}}, tasks)

	require.NoError(t, tasks.Scan(nil))
	require.Nil(t, tasks)

	require.Error(t, tasks.Scan(42))

	var empty Array[string]
	v, err := empty.Value()
	require.NoError(t, err)
	require.NoError(t, empty.Scan(v))
	require.Nil(t, empty)
}
