package protocol_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/ratel-online/domino/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, command := range protocol.Commands() {
		keyword := command.String()
		require.NotEqual(t, "UNKNOWN", keyword)
		require.False(t, seen[keyword], keyword)
		seen[keyword] = true
	}
	require.Len(t, seen, 24)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "TURN", protocol.Bare(protocol.CmdTurn).String())
	assert.Equal(t, "STOCK_SIZE 14", protocol.WithInt(protocol.CmdStockSize, 14).String())
	assert.Equal(t, "PLAYED 3:4", protocol.WithTile(protocol.CmdPlayed, tile.New(3, 4)).String())
	assert.Equal(t, "BOARD []", protocol.WithTiles(protocol.CmdBoard, tile.Tiles{}).String())
	assert.Equal(t, "TILES [2:2, 3:4]", protocol.WithTiles(protocol.CmdTiles, tile.Tiles{tile.New(2, 2), tile.New(3, 4)}).String())
	assert.Equal(t, "END_INIT Mary Ann", protocol.WithText(protocol.CmdEndInit, "Mary Ann").String())
	assert.Equal(t, "GAME_OVER", protocol.WithText(protocol.CmdGameOver, "").String())
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, command := range protocol.Commands() {
		msg := protocol.Bare(command)
		if command.HasPayload() {
			msg = protocol.WithText(command, "some payload")
		}
		decoded, err := protocol.Decode(msg.String() + "\n")
		require.NoError(t, err)
		require.Equal(t, msg, decoded)
	}
}

func TestDecode(t *testing.T) {
	t.Run("payload_keeps_inner_spaces", func(t *testing.T) {
		msg, err := protocol.Decode("END_INIT Mary Ann\r\n")
		require.NoError(t, err)
		require.Equal(t, protocol.CmdEndInit, msg.Command)
		require.Equal(t, "Mary Ann", msg.Payload)
	})

	t.Run("typed_payloads", func(t *testing.T) {
		msg, _ := protocol.Decode("SCORE 12")
		n, err := msg.Int()
		require.NoError(t, err)
		require.Equal(t, 12, n)

		msg, _ = protocol.Decode("DRAW 6:1")
		tl, err := msg.Tile()
		require.NoError(t, err)
		require.Equal(t, tile.New(6, 1), tl)

		msg, _ = protocol.Decode("BOARD [1:3, 3:4, 4:4]")
		ts, err := msg.Tiles()
		require.NoError(t, err)
		require.Equal(t, tile.Tiles{tile.New(1, 3), tile.New(3, 4), tile.New(4, 4)}, ts)
	})

	t.Run("unknown_keyword", func(t *testing.T) {
		_, err := protocol.Decode("HELLO there")
		require.Error(t, err)
		require.True(t, errors.Is(err, consts.ErrorsUnknownCommand))
	})

	t.Run("keyword_is_case_sensitive", func(t *testing.T) {
		_, err := protocol.Decode("turn")
		require.Error(t, err)
	})
}

func TestParseIndex(t *testing.T) {
	index, err := protocol.ParseIndex(" 3 \r")
	require.NoError(t, err)
	require.Equal(t, 3, index)

	for _, input := range []string{"", "x", "1.5", "two"} {
		_, err := protocol.ParseIndex(input)
		require.Equal(t, consts.ErrorsInputInvalid, err, input)
	}
}
