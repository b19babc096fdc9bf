package gesture_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gesturecraft/gesture"
)

func TestEncodeExamples(t *testing.T) {
	cases := []struct {
		sel  gesture.Selection
		want gesture.ID
	}{
		{gesture.NewSelection(), "G_00000"},
		{gesture.NewSelection(gesture.Index, gesture.Middle), "G_01100"},
		{gesture.NewSelection(gesture.Middle, gesture.Index), "G_01100"},
		{gesture.NewSelection(gesture.Thumb), "G_10000"},
		{gesture.NewSelection(gesture.Pinky), "G_00001"},
		{gesture.NewSelection(gesture.Fingers[:]...), "G_11111"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gesture.Encode(tc.sel))
	}
}

func TestEncodeInjectiveAndRoundTrip(t *testing.T) {
	seen := make(map[gesture.ID]bool)
	for s := 0; s < 32; s++ {
		sel := gesture.Selection(s)
		id := gesture.Encode(sel)

		require.Len(t, string(id), 8)
		require.True(t, strings.HasPrefix(string(id), "G_"))
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		back, err := gesture.Decode(id)
		require.NoError(t, err)
		assert.Equal(t, sel, back)
	}
	assert.Len(t, seen, 32)
	assert.Len(t, gesture.All(), 32)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, id := range []gesture.ID{"", "G_", "G_0110", "G_011001", "X_01100", "G_01200", "g_01100"} {
		_, err := gesture.Decode(id)
		assert.ErrorIs(t, err, gesture.ErrInvalidID, "id %q", id)
		assert.False(t, id.Valid())
	}
}

func TestIDFingersAndBinary(t *testing.T) {
	id := gesture.ID("G_01101")
	assert.Equal(t, []string{"Index", "Middle", "Pinky"}, id.Fingers())
	assert.Equal(t, "0 1 1 0 1", id.Binary())
	assert.Nil(t, gesture.ID("bogus").Fingers())
}

func TestSelectionToggle(t *testing.T) {
	var sel gesture.Selection
	assert.True(t, sel.IsEmpty())

	sel = sel.Toggle(gesture.Ring)
	assert.True(t, sel.Has(gesture.Ring))
	assert.Equal(t, 1, sel.Len())

	sel = sel.Toggle(gesture.Ring)
	assert.True(t, sel.IsEmpty())
}

func TestParseFinger(t *testing.T) {
	f, err := gesture.ParseFinger("MIDDLE")
	require.NoError(t, err)
	assert.Equal(t, gesture.Middle, f)

	f, err = gesture.ParseFinger(" thumb ")
	require.NoError(t, err)
	assert.Equal(t, gesture.Thumb, f)

	_, err = gesture.ParseFinger("elbow")
	assert.ErrorIs(t, err, gesture.ErrUnknownFinger)
}

func TestSelectionJSON(t *testing.T) {
	sel := gesture.NewSelection(gesture.Pinky, gesture.Thumb)
	data, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `["thumb","pinky"]`, string(data))

	var got gesture.Selection
	require.NoError(t, json.Unmarshal([]byte(`["Index","index","ring"]`), &got))
	assert.Equal(t, gesture.ID("G_01010"), gesture.Encode(got))

	assert.Error(t, json.Unmarshal([]byte(`["wrist"]`), &got))
}
