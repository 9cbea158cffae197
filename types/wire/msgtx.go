// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"gitlab.com/jaxnet/zblock/types/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = SaplingTxVersion

	// OverwinterTxVersion is the transaction version introduced by the
	// Overwinter upgrade.
	OverwinterTxVersion = 3

	// SaplingTxVersion is the transaction version introduced by the Sapling
	// upgrade.
	SaplingTxVersion = 4

	// OverwinterVersionGroupID is the version group of v3 transactions.
	OverwinterVersionGroupID uint32 = 0x03c48270

	// SaplingVersionGroupID is the version group of v4 transactions.
	SaplingVersionGroupID uint32 = 0x892f2085

	// overwinteredFlag is the top bit of the transaction header.  The
	// remaining bits hold the version.
	overwinteredFlag = 1 << 31

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff
)

const (
	// PHGRProofSize is the size of the BCTV14 proof of a JoinSplit carried
	// by v2 and v3 transactions.
	PHGRProofSize = 296

	// GrothProofSize is the size of a Groth16 proof, used by shielded spends,
	// shielded outputs and the JoinSplits of v4 transactions.
	GrothProofSize = 192

	// NoteCiphertextSize is the size of an encrypted JoinSplit note.
	NoteCiphertextSize = 601

	// EncCiphertextSize is the size of the encrypted note of a shielded output.
	EncCiphertextSize = 580

	// OutCiphertextSize is the size of the outgoing cipher text of a
	// shielded output.
	OutCiphertextSize = 80

	// SpendDescriptionSize is the encoded size of a SpendDescription.
	SpendDescriptionSize = 32*4 + GrothProofSize + 64

	// OutputDescriptionSize is the encoded size of an OutputDescription.
	OutputDescriptionSize = 32*3 + EncCiphertextSize + OutCiphertextSize + GrothProofSize

	// joinSplitBaseSize is the encoded size of a JoinSplit without the proof.
	joinSplitBaseSize = 8 + 8 + 32 + 2*32 + 2*32 + 32 + 32 + 2*32 + 2*NoteCiphertextSize
)

const (
	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerBlock is the maximum number of transactions inputs that
	// a transaction which fits into a block could possibly have.
	maxTxInPerBlock = (MaxBlockPayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerBlock is the maximum number of transactions outputs that
	// a transaction which fits into a block could possibly have.
	maxTxOutPerBlock = (MaxBlockPayload / minTxOutPayload) + 1

	// maxSpendsPerBlock, maxOutputsPerBlock and maxJoinSplitsPerBlock bound
	// the shielded components of a transaction the same way.
	maxSpendsPerBlock     = MaxBlockPayload / SpendDescriptionSize
	maxOutputsPerBlock    = MaxBlockPayload / OutputDescriptionSize
	maxJoinSplitsPerBlock = MaxBlockPayload / (joinSplitBaseSize + GrothProofSize)

	// minTxPayload is the minimum payload size for a transaction.  Note
	// that any realistically usable transaction must have at least one
	// input or output, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	// Version 4 bytes + Varint number of transaction inputs 1 byte + Varint
	// number of transaction outputs 1 byte + LockTime 4 bytes + min input
	// payload + min output payload.
	minTxPayload = 10
)

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// TxIn defines a transparent transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarBytesSerializeSize(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transparent transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarBytesSerializeSize(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// SpendDescription is a Sapling shielded input.
type SpendDescription struct {
	Cv           [32]byte
	Anchor       [32]byte
	Nullifier    [32]byte
	Rk           [32]byte
	ZkProof      [GrothProofSize]byte
	SpendAuthSig [64]byte
}

// OutputDescription is a Sapling shielded output.
type OutputDescription struct {
	Cv            [32]byte
	Cmu           [32]byte
	EphemeralKey  [32]byte
	EncCiphertext [EncCiphertextSize]byte
	OutCiphertext [OutCiphertextSize]byte
	ZkProof       [GrothProofSize]byte
}

// JoinSplit is a Sprout shielded transfer.
type JoinSplit struct {
	VPubOld      int64
	VPubNew      int64
	Anchor       [32]byte
	Nullifiers   [2][32]byte
	Commitments  [2][32]byte
	EphemeralKey [32]byte
	RandomSeed   [32]byte
	Macs         [2][32]byte

	// Proof is PHGRProofSize bytes long in v2 and v3 transactions and
	// GrothProofSize bytes long in v4 transactions.
	Proof []byte

	Ciphertexts [2][NoteCiphertextSize]byte
}

// MsgTx implements the transaction encoding of the pre-NU5 zcash
// transaction formats (versions 1 to 4).
//
// Shielded components are carried as opaque byte blocks, nothing about the
// proofs or signatures is checked.
type MsgTx struct {
	// Overwintered is the top bit of the transaction header, set for v3
	// and later transactions.
	Overwintered bool

	// Version is the header without the overwintered bit.
	Version int32

	// VersionGroupID is only present in overwintered transactions.
	VersionGroupID uint32

	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32

	// ExpiryHeight is only present in overwintered transactions.
	ExpiryHeight uint32

	// Sapling components, only present in v4 transactions.
	ValueBalance    int64
	ShieldedSpends  []*SpendDescription
	ShieldedOutputs []*OutputDescription

	// Sprout components, present from v2 on.  The key and signature are
	// only encoded when there is at least one JoinSplit.
	JoinSplits      []*JoinSplit
	JoinSplitPubKey [32]byte
	JoinSplitSig    [64]byte

	// BindingSig is only encoded for v4 transactions with shielded spends
	// or outputs.
	BindingSig [64]byte
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsSapling reports whether the transaction uses the v4 (Sapling) format.
func (msg *MsgTx) IsSapling() bool {
	return msg.Overwintered && msg.Version == SaplingTxVersion
}

// hasJoinSplits reports whether the format carries a JoinSplit vector.
func (msg *MsgTx) hasJoinSplits() bool {
	return msg.Version >= 2
}

// hasBindingSig reports whether the binding signature is encoded.
func (msg *MsgTx) hasBindingSig() bool {
	return msg.IsSapling() && len(msg.ShieldedSpends)+len(msg.ShieldedOutputs) > 0
}

// JoinSplitProofSize returns the proof length of the JoinSplits of this
// transaction format.
func (msg *MsgTx) JoinSplitProofSize() int {
	if msg.IsSapling() {
		return GrothProofSize
	}
	return PHGRProofSize
}

// IsCoinBase reports whether the transaction has the shape of a coinbase:
// exactly one input spending the null outpoint.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}

	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == math.MaxUint32 && prevOut.Hash == chainhash.ZeroHash
}

// TxHash generates the Hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	// Encode the transaction and calculate double sha256 on the result.
	// The error is ignored: a transaction Serialize rejects has no
	// encoding, and therefore no meaningful hash either.
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := *msg
	newTx.TxIn = nil
	newTx.TxOut = nil
	newTx.ShieldedSpends = nil
	newTx.ShieldedOutputs = nil
	newTx.JoinSplits = nil

	for _, oldTxIn := range msg.TxIn {
		newTxIn := *oldTxIn
		newTxIn.SignatureScript = cloneBytes(oldTxIn.SignatureScript)
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}
	for _, oldTxOut := range msg.TxOut {
		newTxOut := *oldTxOut
		newTxOut.PkScript = cloneBytes(oldTxOut.PkScript)
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}
	for _, spend := range msg.ShieldedSpends {
		newSpend := *spend
		newTx.ShieldedSpends = append(newTx.ShieldedSpends, &newSpend)
	}
	for _, output := range msg.ShieldedOutputs {
		newOutput := *output
		newTx.ShieldedOutputs = append(newTx.ShieldedOutputs, &newOutput)
	}
	for _, js := range msg.JoinSplits {
		newJS := *js
		newJS.Proof = cloneBytes(js.Proof)
		newTx.JoinSplits = append(newTx.JoinSplits, &newJS)
	}

	return &newTx
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	header, err := BinarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}

	*msg = MsgTx{
		Overwintered: header&overwinteredFlag != 0,
		Version:      int32(header &^ overwinteredFlag),
	}

	if msg.Overwintered {
		if msg.VersionGroupID, err = BinarySerializer.Uint32(r, littleEndian); err != nil {
			return err
		}

		if err = msg.checkVersionGroup("MsgTx.Deserialize"); err != nil {
			return err
		}
	}

	count, err := readCount(r, maxTxInPerBlock, "MsgTx.Deserialize", "input transactions")
	if err != nil {
		return err
	}
	if count > 0 {
		msg.TxIn = make([]*TxIn, count)
		for i := range msg.TxIn {
			ti := &TxIn{}
			if err = readTxIn(r, ti); err != nil {
				return err
			}
			msg.TxIn[i] = ti
		}
	}

	count, err = readCount(r, maxTxOutPerBlock, "MsgTx.Deserialize", "output transactions")
	if err != nil {
		return err
	}
	if count > 0 {
		msg.TxOut = make([]*TxOut, count)
		for i := range msg.TxOut {
			to := &TxOut{}
			if err = readTxOut(r, to); err != nil {
				return err
			}
			msg.TxOut[i] = to
		}
	}

	if msg.LockTime, err = BinarySerializer.Uint32(r, littleEndian); err != nil {
		return err
	}

	if msg.Overwintered {
		if msg.ExpiryHeight, err = BinarySerializer.Uint32(r, littleEndian); err != nil {
			return err
		}
	}

	if msg.IsSapling() {
		if err = ReadElement(r, &msg.ValueBalance); err != nil {
			return err
		}

		count, err = readCount(r, maxSpendsPerBlock, "MsgTx.Deserialize", "shielded spends")
		if err != nil {
			return err
		}
		if count > 0 {
			msg.ShieldedSpends = make([]*SpendDescription, count)
			for i := range msg.ShieldedSpends {
				spend := &SpendDescription{}
				if err = readSpendDescription(r, spend); err != nil {
					return err
				}
				msg.ShieldedSpends[i] = spend
			}
		}

		count, err = readCount(r, maxOutputsPerBlock, "MsgTx.Deserialize", "shielded outputs")
		if err != nil {
			return err
		}
		if count > 0 {
			msg.ShieldedOutputs = make([]*OutputDescription, count)
			for i := range msg.ShieldedOutputs {
				output := &OutputDescription{}
				if err = readOutputDescription(r, output); err != nil {
					return err
				}
				msg.ShieldedOutputs[i] = output
			}
		}
	}

	if msg.hasJoinSplits() {
		count, err = readCount(r, maxJoinSplitsPerBlock, "MsgTx.Deserialize", "joinsplits")
		if err != nil {
			return err
		}
		if count > 0 {
			proofSize := msg.JoinSplitProofSize()
			msg.JoinSplits = make([]*JoinSplit, count)
			for i := range msg.JoinSplits {
				js := &JoinSplit{}
				if err = readJoinSplit(r, js, proofSize); err != nil {
					return err
				}
				msg.JoinSplits[i] = js
			}

			err = ReadElements(r, &msg.JoinSplitPubKey, &msg.JoinSplitSig)
			if err != nil {
				return err
			}
		}
	}

	if msg.hasBindingSig() {
		if err = ReadElement(r, &msg.BindingSig); err != nil {
			return err
		}
	}

	return nil
}

// checkVersionGroup makes sure an overwintered transaction is a known format.
// Later formats are laid out differently, so reading on would produce garbage.
func (msg *MsgTx) checkVersionGroup(funcName string) error {
	var want uint32
	switch msg.Version {
	case OverwinterTxVersion:
		want = OverwinterVersionGroupID
	case SaplingTxVersion:
		want = SaplingVersionGroupID
	default:
		str := fmt.Sprintf("unsupported overwintered transaction version %d", msg.Version)
		return messageError(funcName, str)
	}

	if msg.VersionGroupID != want {
		str := fmt.Sprintf("version group id %#08x does not match transaction "+
			"version %d, want %#08x", msg.VersionGroupID, msg.Version, want)
		return messageError(funcName, str)
	}
	return nil
}

// checkShape makes sure every field of the transaction has a place in its
// format, so that decoding the encoding gives the same transaction back.
func (msg *MsgTx) checkShape() error {
	const funcName = "MsgTx.Serialize"

	if msg.Version < 0 {
		str := fmt.Sprintf("negative transaction version %d", msg.Version)
		return messageError(funcName, str)
	}
	if msg.Overwintered {
		if err := msg.checkVersionGroup(funcName); err != nil {
			return err
		}
	} else if msg.VersionGroupID != 0 || msg.ExpiryHeight != 0 {
		return messageError(funcName, "version group id and expiry height "+
			"need an overwintered transaction")
	}

	if !msg.IsSapling() && (msg.ValueBalance != 0 ||
		len(msg.ShieldedSpends) > 0 || len(msg.ShieldedOutputs) > 0) {
		str := fmt.Sprintf("sapling components in a version %d transaction", msg.Version)
		return messageError(funcName, str)
	}
	if !msg.hasBindingSig() && msg.BindingSig != [64]byte{} {
		return messageError(funcName, "binding signature without shielded "+
			"spends or outputs")
	}

	if len(msg.JoinSplits) == 0 {
		if msg.JoinSplitPubKey != [32]byte{} || msg.JoinSplitSig != [64]byte{} {
			return messageError(funcName, "joinsplit key or signature without "+
				"joinsplits")
		}
		return nil
	}
	if !msg.hasJoinSplits() {
		str := fmt.Sprintf("joinsplits in a version %d transaction", msg.Version)
		return messageError(funcName, str)
	}
	proofSize := msg.JoinSplitProofSize()
	for i, js := range msg.JoinSplits {
		if len(js.Proof) != proofSize {
			str := fmt.Sprintf("joinsplit %d proof is %d bytes, want %d",
				i, len(js.Proof), proofSize)
			return messageError(funcName, str)
		}
	}
	return nil
}

// Serialize encodes the transaction to w.
//
// A transaction holding data its format has no room for, or JoinSplit proofs
// of another length than JoinSplitProofSize, is rejected with a MessageError
// before anything is written.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if err := msg.checkShape(); err != nil {
		return err
	}

	header := uint32(msg.Version)
	if msg.Overwintered {
		header |= overwinteredFlag
	}
	if err := BinarySerializer.PutUint32(w, littleEndian, header); err != nil {
		return err
	}

	if msg.Overwintered {
		if err := BinarySerializer.PutUint32(w, littleEndian, msg.VersionGroupID); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}

	if err := BinarySerializer.PutUint32(w, littleEndian, msg.LockTime); err != nil {
		return err
	}

	if msg.Overwintered {
		if err := BinarySerializer.PutUint32(w, littleEndian, msg.ExpiryHeight); err != nil {
			return err
		}
	}

	if msg.IsSapling() {
		if err := WriteElement(w, msg.ValueBalance); err != nil {
			return err
		}

		if err := WriteVarInt(w, uint64(len(msg.ShieldedSpends))); err != nil {
			return err
		}
		for _, spend := range msg.ShieldedSpends {
			if err := writeSpendDescription(w, spend); err != nil {
				return err
			}
		}

		if err := WriteVarInt(w, uint64(len(msg.ShieldedOutputs))); err != nil {
			return err
		}
		for _, output := range msg.ShieldedOutputs {
			if err := writeOutputDescription(w, output); err != nil {
				return err
			}
		}
	}

	if msg.hasJoinSplits() {
		if err := WriteVarInt(w, uint64(len(msg.JoinSplits))); err != nil {
			return err
		}
		for _, js := range msg.JoinSplits {
			if err := writeJoinSplit(w, js); err != nil {
				return err
			}
		}

		if len(msg.JoinSplits) > 0 {
			if err := WriteElements(w, &msg.JoinSplitPubKey, &msg.JoinSplitSig); err != nil {
				return err
			}
		}
	}

	if msg.hasBindingSig() {
		return WriteElement(w, &msg.BindingSig)
	}

	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	// Header 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	if msg.Overwintered {
		// VersionGroupID 4 bytes + ExpiryHeight 4 bytes.
		n += 8
	}

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	if msg.IsSapling() {
		n += 8 +
			VarIntSerializeSize(uint64(len(msg.ShieldedSpends))) +
			len(msg.ShieldedSpends)*SpendDescriptionSize +
			VarIntSerializeSize(uint64(len(msg.ShieldedOutputs))) +
			len(msg.ShieldedOutputs)*OutputDescriptionSize
	}

	if msg.hasJoinSplits() {
		n += VarIntSerializeSize(uint64(len(msg.JoinSplits)))
		for _, js := range msg.JoinSplits {
			n += joinSplitBaseSize + len(js.Proof)
		}
		if len(msg.JoinSplits) > 0 {
			n += 32 + 64
		}
	}

	if msg.hasBindingSig() {
		n += 64
	}

	return n
}

// NewMsgTx returns a new transparent transaction message of the given
// version.  Overwintered formats are set up by NewSaplingMsgTx.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// NewSaplingMsgTx returns a new empty v4 transaction.
func NewSaplingMsgTx(expiryHeight uint32) *MsgTx {
	return &MsgTx{
		Overwintered:   true,
		Version:        SaplingTxVersion,
		VersionGroupID: SaplingVersionGroupID,
		ExpiryHeight:   expiryHeight,
	}
}

// readOutPoint reads the next sequence of bytes from r as an OutPoint.
func readOutPoint(r io.Reader, op *OutPoint) error {
	_, err := io.ReadFull(r, op.Hash[:])
	if err != nil {
		return err
	}

	op.Index, err = BinarySerializer.Uint32(r, littleEndian)
	return err
}

// writeOutPoint encodes op to w.
func writeOutPoint(w io.Writer, op *OutPoint) error {
	_, err := w.Write(op.Hash[:])
	if err != nil {
		return err
	}

	return BinarySerializer.PutUint32(w, littleEndian, op.Index)
}

// readTxIn reads the next sequence of bytes from r as a transaction input.
func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	ti.SignatureScript, err = ReadVarBytes(r, MaxBlockPayload, "transaction input signature script")
	if err != nil {
		return err
	}

	return ReadElement(r, &ti.Sequence)
}

// writeTxIn encodes ti to w.
func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeOutPoint(w, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}

	return BinarySerializer.PutUint32(w, littleEndian, ti.Sequence)
}

// readTxOut reads the next sequence of bytes from r as a transaction output.
func readTxOut(r io.Reader, to *TxOut) error {
	err := ReadElement(r, &to.Value)
	if err != nil {
		return err
	}

	to.PkScript, err = ReadVarBytes(r, MaxBlockPayload, "transaction output public key script")
	return err
}

// writeTxOut encodes to into w.
func writeTxOut(w io.Writer, to *TxOut) error {
	err := BinarySerializer.PutUint64(w, littleEndian, uint64(to.Value))
	if err != nil {
		return err
	}

	return WriteVarBytes(w, to.PkScript)
}

// readFixed fills every passed buffer from r in order.
func readFixed(r io.Reader, bufs ...[]byte) error {
	for _, buf := range bufs {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
	}
	return nil
}

// writeFixed writes every passed buffer to w in order.
func writeFixed(w io.Writer, bufs ...[]byte) error {
	for _, buf := range bufs {
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readSpendDescription(r io.Reader, s *SpendDescription) error {
	return readFixed(r, s.Cv[:], s.Anchor[:], s.Nullifier[:], s.Rk[:],
		s.ZkProof[:], s.SpendAuthSig[:])
}

func writeSpendDescription(w io.Writer, s *SpendDescription) error {
	return writeFixed(w, s.Cv[:], s.Anchor[:], s.Nullifier[:], s.Rk[:],
		s.ZkProof[:], s.SpendAuthSig[:])
}

func readOutputDescription(r io.Reader, o *OutputDescription) error {
	return readFixed(r, o.Cv[:], o.Cmu[:], o.EphemeralKey[:],
		o.EncCiphertext[:], o.OutCiphertext[:], o.ZkProof[:])
}

func writeOutputDescription(w io.Writer, o *OutputDescription) error {
	return writeFixed(w, o.Cv[:], o.Cmu[:], o.EphemeralKey[:],
		o.EncCiphertext[:], o.OutCiphertext[:], o.ZkProof[:])
}

func readJoinSplit(r io.Reader, js *JoinSplit, proofSize int) error {
	err := ReadElements(r, &js.VPubOld, &js.VPubNew)
	if err != nil {
		return err
	}

	js.Proof = make([]byte, proofSize)
	return readFixed(r, js.Anchor[:],
		js.Nullifiers[0][:], js.Nullifiers[1][:],
		js.Commitments[0][:], js.Commitments[1][:],
		js.EphemeralKey[:], js.RandomSeed[:],
		js.Macs[0][:], js.Macs[1][:],
		js.Proof,
		js.Ciphertexts[0][:], js.Ciphertexts[1][:])
}

func writeJoinSplit(w io.Writer, js *JoinSplit) error {
	err := WriteElements(w, js.VPubOld, js.VPubNew)
	if err != nil {
		return err
	}

	return writeFixed(w, js.Anchor[:],
		js.Nullifiers[0][:], js.Nullifiers[1][:],
		js.Commitments[0][:], js.Commitments[1][:],
		js.EphemeralKey[:], js.RandomSeed[:],
		js.Macs[0][:], js.Macs[1][:],
		js.Proof,
		js.Ciphertexts[0][:], js.Ciphertexts[1][:])
}
