package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/spf13/pflag"
)

// levelFlags are the --module/--level pair shared by level-scoped commands.
type levelFlags struct {
	module string
	level  int
}

func (f *levelFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.module, "module", string(domain.ModuleSentenceBuilder), "Module ID, e.g. sentence_builder")
	fs.IntVar(&f.level, "level", 1, "Level number (1-20)")
}

func (f *levelFlags) resolve() (domain.ModuleID, int, error) {
	id, err := parseModule(f.module)
	if err != nil {
		return "", 0, err
	}
	if f.level < 1 || f.level > curriculum.LevelCount {
		return "", 0, fmt.Errorf("level must be between 1 and %d, got %d", curriculum.LevelCount, f.level)
	}
	return id, f.level, nil
}

// parseModule accepts a module ID with dashes or underscores.
func parseModule(s string) (domain.ModuleID, error) {
	id := domain.ModuleID(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if !id.Valid() {
		names := make([]string, 0, len(domain.AllModules()))
		for _, m := range domain.AllModules() {
			names = append(names, string(m))
		}
		return "", fmt.Errorf("unknown module %q (want one of: %s)", s, strings.Join(names, ", "))
	}
	return id, nil
}

// slotFlag collects repeated --slot slot=wordID pairs.
type slotFlag map[domain.SlotType]string

var _ pflag.Value = slotFlag(nil)

func (f slotFlag) String() string {
	parts := make([]string, 0, len(f))
	for slot, id := range f {
		parts = append(parts, fmt.Sprintf("%s=%s", slot, id))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (f slotFlag) Set(v string) error {
	for _, pair := range strings.Split(v, ",") {
		slot, id, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || id == "" {
			return fmt.Errorf("expected slot=wordID, got %q", pair)
		}
		st := domain.SlotType(slot)
		if !st.Valid() {
			return fmt.Errorf("unknown slot %q", slot)
		}
		f[st] = id
	}
	return nil
}

func (f slotFlag) Type() string { return "slot=wordID" }
