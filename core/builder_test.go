package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

func testFaucet() FaucetID {
	return FaucetID{Prefix: felt.New(9001), Suffix: felt.New(9002)}
}

func testParams() NoteParameters {
	recipient := NoteRecipient{
		SerialNum:  felt.WordFromUint64s(11, 12, 13, 14),
		ScriptRoot: P2IDScriptRoot,
		Inputs:     []felt.Element{felt.New(201), felt.New(202)},
	}
	return NoteParameters{
		Tag:           felt.New(7),
		Aux:           felt.Zero(),
		NoteType:      NoteTypePublic,
		ExecutionHint: HintAlways,
		Recipient:     recipient.Digest(),
		Asset:         FungibleAsset(testFaucet(), 50).Word(),
	}
}

func TestEncodeLayout(t *testing.T) {
	params := testParams()
	encoded := params.Encode()
	require.Len(t, encoded, encodedParamsLen)
	require.Zero(t, len(encoded)%felt.WordLen)

	assert.True(t, encoded[tagIndex].Equal(&params.Tag))
	assert.True(t, encoded[auxIndex].Equal(&params.Aux))
	assert.Equal(t, uint64(params.NoteType), felt.Uint64(encoded[noteTypeIndex]))
	assert.Equal(t, uint64(params.ExecutionHint), felt.Uint64(encoded[executionHintIndex]))
	assert.True(t, felt.WordFromElements(encoded[recipientStart:recipientStart+felt.WordLen]).Equal(params.Recipient))
	assert.True(t, felt.WordFromElements(encoded[assetStart:assetStart+felt.WordLen]).Equal(params.Asset))
}

func TestBuildTransferCommitmentPublishesEntry(t *testing.T) {
	params := testParams()
	prov := advice.NewProvider()

	arg, encoded := BuildTransferCommitment(params, prov)

	// The returned argument is the canonical digest reversed.
	digest := felt.HashElements(encoded)
	assert.True(t, arg.Equal(digest.Reversed()))

	// The provider holds the canonical encoding under the canonical digest.
	n, err := prov.Len(digest)
	require.NoError(t, err)
	assert.Equal(t, encodedParamsLen, n)
}

func TestRecipientDigestBindsAllFields(t *testing.T) {
	base := NoteRecipient{
		SerialNum:  felt.WordFromUint64s(1, 2, 3, 4),
		ScriptRoot: P2IDScriptRoot,
		Inputs:     []felt.Element{felt.New(201), felt.New(202)},
	}

	changedSerial := base
	changedSerial.SerialNum = felt.WordFromUint64s(1, 2, 3, 5)
	assert.False(t, base.Digest().Equal(changedSerial.Digest()))

	changedScript := base
	changedScript.ScriptRoot = CounterScriptRoot
	assert.False(t, base.Digest().Equal(changedScript.Digest()))

	changedInputs := base
	changedInputs.Inputs = []felt.Element{felt.New(201), felt.New(203)}
	assert.False(t, base.Digest().Equal(changedInputs.Digest()))
}

func TestNewP2IDRecipientTargetsAccount(t *testing.T) {
	target := AccountID{Prefix: felt.New(201), Suffix: felt.New(202)}
	recipient := NewP2IDRecipient(target)

	require.Len(t, recipient.Inputs, 2)
	assert.True(t, recipient.Inputs[0].Equal(&target.Prefix))
	assert.True(t, recipient.Inputs[1].Equal(&target.Suffix))
	assert.True(t, recipient.ScriptRoot.Equal(P2IDScriptRoot))

	// Serial numbers must differ between notes to the same target.
	other := NewP2IDRecipient(target)
	assert.False(t, recipient.SerialNum.Equal(other.SerialNum))
}
