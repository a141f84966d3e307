package core

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/felt"
)

// FaucetID identifies the faucet that issued an asset.
type FaucetID struct {
	Prefix felt.Element
	Suffix felt.Element
}

func (f FaucetID) Equal(other FaucetID) bool {
	return f.Prefix.Equal(&other.Prefix) && f.Suffix.Equal(&other.Suffix)
}

// AssetKind discriminates fungible amounts from non-fungible items.
type AssetKind int

const (
	AssetFungible AssetKind = iota
	AssetNonFungible
)

// nonFungibleMarker occupies the third element of a packed
// non-fungible asset word. Fungible assets keep that element zero, so
// the packed form is self-describing.
const nonFungibleMarker = 1

// Asset is fungible value (a faucet id plus an amount) or a
// non-fungible item (a faucet id plus an item commitment). Either form
// packs into a single word:
//
//	fungible:     [faucet prefix, faucet suffix, 0, amount]
//	non-fungible: [faucet prefix, faucet suffix, 1, item]
type Asset struct {
	Kind   AssetKind
	Faucet FaucetID

	// Amount is the fungible amount; zero for non-fungible assets.
	Amount uint64
	// Item commits to the non-fungible item's data; zero for fungible
	// assets.
	Item felt.Element
}

// FungibleAsset builds a fungible asset.
func FungibleAsset(faucet FaucetID, amount uint64) Asset {
	return Asset{Kind: AssetFungible, Faucet: faucet, Amount: amount}
}

// NonFungibleAsset builds a non-fungible asset committing to data.
func NonFungibleAsset(faucet FaucetID, data []felt.Element) Asset {
	digest := felt.HashElements(data)
	return Asset{Kind: AssetNonFungible, Faucet: faucet, Item: digest[0]}
}

// Word packs the asset into its canonical word form.
func (a Asset) Word() felt.Word {
	if a.Kind == AssetNonFungible {
		return felt.Word{a.Faucet.Prefix, a.Faucet.Suffix, felt.New(nonFungibleMarker), a.Item}
	}
	return felt.Word{a.Faucet.Prefix, a.Faucet.Suffix, felt.Zero(), felt.New(a.Amount)}
}

// AssetFromWord unpacks an asset from its canonical word form.
func AssetFromWord(w felt.Word) Asset {
	faucet := FaucetID{Prefix: w[0], Suffix: w[1]}
	if !w[2].IsZero() {
		return Asset{Kind: AssetNonFungible, Faucet: faucet, Item: w[3]}
	}
	return Asset{Kind: AssetFungible, Faucet: faucet, Amount: felt.Uint64(w[3])}
}

func (a Asset) Equal(other Asset) bool {
	return a.Word().Equal(other.Word())
}

// Vault is the multiset of assets held by an account. Same-faucet
// fungible amounts are merged; non-fungible items are tracked
// individually by their packed word.
type Vault struct {
	fungible    map[FaucetID]uint64
	nonFungible map[felt.Word]Asset
}

func NewVault() Vault {
	return Vault{
		fungible:    make(map[FaucetID]uint64),
		nonFungible: make(map[felt.Word]Asset),
	}
}

func (v Vault) clone() Vault {
	cp := NewVault()
	for faucet, amount := range v.fungible {
		cp.fungible[faucet] = amount
	}
	for w, asset := range v.nonFungible {
		cp.nonFungible[w] = asset
	}
	return cp
}

// Add merges asset into the vault. Adding a fungible asset accumulates
// with any existing amount from the same faucet; re-adding a
// non-fungible item already present fails.
func (v Vault) Add(asset Asset) error {
	switch asset.Kind {
	case AssetFungible:
		current := v.fungible[asset.Faucet]
		if current+asset.Amount < current {
			return errors.Wrapf(ErrCapability, "fungible amount overflow for faucet %s", asset.Faucet.Prefix.String())
		}
		v.fungible[asset.Faucet] = current + asset.Amount
	case AssetNonFungible:
		w := asset.Word()
		if _, ok := v.nonFungible[w]; ok {
			return errors.Wrapf(ErrCapability, "non-fungible asset %s already in vault", w)
		}
		v.nonFungible[w] = asset
	default:
		panic("core: unknown asset kind")
	}
	return nil
}

// Remove removes and returns the matching asset. For fungible assets
// the requested amount is split out of the merged balance; for
// non-fungible assets the exact item is removed. Absent or
// insufficient assets fail with ErrCapability.
func (v Vault) Remove(asset Asset) (Asset, error) {
	switch asset.Kind {
	case AssetFungible:
		current, ok := v.fungible[asset.Faucet]
		if !ok || current < asset.Amount {
			return Asset{}, errors.Wrapf(ErrCapability, "vault holds %d, requested %d", current, asset.Amount)
		}
		if current == asset.Amount {
			delete(v.fungible, asset.Faucet)
		} else {
			v.fungible[asset.Faucet] = current - asset.Amount
		}
		return asset, nil
	case AssetNonFungible:
		w := asset.Word()
		stored, ok := v.nonFungible[w]
		if !ok {
			return Asset{}, errors.Wrapf(ErrCapability, "non-fungible asset %s not in vault", w)
		}
		delete(v.nonFungible, w)
		return stored, nil
	default:
		panic("core: unknown asset kind")
	}
}

// FungibleBalance returns the merged amount held from faucet.
func (v Vault) FungibleBalance(faucet FaucetID) uint64 {
	return v.fungible[faucet]
}

// Assets lists the vault's contents as individual assets.
func (v Vault) Assets() []Asset {
	assets := make([]Asset, 0, len(v.fungible)+len(v.nonFungible))
	for faucet, amount := range v.fungible {
		assets = append(assets, FungibleAsset(faucet, amount))
	}
	for _, asset := range v.nonFungible {
		assets = append(assets, asset)
	}
	return assets
}
