package systems

import (
	"sort"

	"github.com/automoto/keydoor/components"
	"github.com/yohamta/donburi"
)

func spaceOf(w donburi.World) *components.SpaceData {
	e, ok := components.LevelState.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// SyncObject moves an entry's proxy to match its body.
func SyncObject(e *donburi.Entry, pad float64) {
	if !e.HasComponent(components.Object) {
		return
	}
	components.Object.Get(e).Sync(components.Body.Get(e), pad)
}

// Candidates returns the entries whose proxies share a cell with e's proxy
// and carry tag, ordered by less. The order must not depend on cell layout,
// so callers always pass a stable ordering.
func Candidates(e *donburi.Entry, tag string, less func(a, b *donburi.Entry) bool) []*donburi.Entry {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tag)
	out := make([]*donburi.Entry, 0, len(objs))
	for _, o := range objs {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == e || !entry.Valid() {
			continue
		}
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byPlatformIndex(a, b *donburi.Entry) bool {
	return components.Platform.Get(a).Index < components.Platform.Get(b).Index
}

func byBoxID(a, b *donburi.Entry) bool {
	return components.Box.Get(a).ID < components.Box.Get(b).ID
}

func byEntity(a, b *donburi.Entry) bool {
	return a.Entity() < b.Entity()
}
