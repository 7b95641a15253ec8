package render

import (
	"fmt"
	"sort"

	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/prefabs"
)

// BuildAnimation turns an animation prefab into a component. Sheets are
// looked up in the image registry and left nil when not loaded.
func BuildAnimation(spec prefabs.AnimationSpec) (component.Animation, error) {
	if len(spec.Defs) == 0 {
		return component.Animation{}, fmt.Errorf("render: animation has no clips")
	}
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for _, name := range sortedDefNames(spec) {
		def := spec.Defs[name]
		if def.FrameCount <= 0 || def.FrameW <= 0 || def.FrameH <= 0 {
			return component.Animation{}, fmt.Errorf("render: clip %q has no frames", name)
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			Sheet:      GetImage(def.Sheet),
			SheetKey:   def.Sheet,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	current := spec.Current
	if _, ok := defs[current]; !ok {
		current = sortedDefNames(spec)[0]
	}
	return component.Animation{Defs: defs, Current: current, Playing: true}, nil
}

// AnimationLibrary stores built animations by key.
type AnimationLibrary struct {
	clips map[string]component.Animation
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string]component.Animation)}
}

// Register adds an animation to the library.
func (l *AnimationLibrary) Register(key string, anim component.Animation) {
	if l == nil || key == "" || len(anim.Defs) == 0 {
		return
	}
	l.clips[key] = anim
}

// Get returns an animation by key.
func (l *AnimationLibrary) Get(key string) (component.Animation, bool) {
	if l == nil || key == "" {
		return component.Animation{}, false
	}
	anim, ok := l.clips[key]
	return anim, ok
}

// Keys returns the registered keys in order.
func (l *AnimationLibrary) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, 0, len(l.clips))
	for k := range l.clips {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDefNames(spec prefabs.AnimationSpec) []string {
	names := make([]string, 0, len(spec.Defs))
	for name := range spec.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
