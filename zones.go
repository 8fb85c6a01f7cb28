package cottage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ZoneTag int

const (
	ZoneWall ZoneTag = iota
	ZoneStairs
	ZoneInterior
	ZonePickup
)

var zoneTagNames = map[ZoneTag]string{
	ZoneWall:     "wall",
	ZoneStairs:   "stairs",
	ZoneInterior: "interior",
	ZonePickup:   "pickup",
}

func (t ZoneTag) String() string {
	if name, ok := zoneTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ZoneTag(%d)", int(t))
}

func ParseZoneTag(s string) (ZoneTag, error) {
	for tag, name := range zoneTagNames {
		if name == s {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown zone tag %q", s)
}

func (t ZoneTag) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t *ZoneTag) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tag, err := ParseZoneTag(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = tag
	return nil
}

type Zone struct {
	Name string
	Tag  ZoneTag
	Rect Rectangle
}

// ZoneTable is an ordered list of tagged rectangles. It is not modified after
// construction, so it can be shared by the controller and every watcher.
type ZoneTable struct {
	zones []Zone
}

func NewZoneTable(zones ...Zone) *ZoneTable {
	return &ZoneTable{zones: append([]Zone(nil), zones...)}
}

func (t *ZoneTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.zones)
}

func (t *ZoneTable) Zones() []Zone {
	if t == nil {
		return nil
	}
	return append([]Zone(nil), t.zones...)
}

// Filter returns a new table with the zones carrying one of the tags, in order.
func (t *ZoneTable) Filter(tags ...ZoneTag) *ZoneTable {
	res := &ZoneTable{}
	if t == nil {
		return res
	}
	for _, z := range t.zones {
		for _, tag := range tags {
			if z.Tag == tag {
				res.zones = append(res.zones, z)
				break
			}
		}
	}
	return res
}

// AnyContains is PointInAnyZone restricted to zones carrying tag.
func (t *ZoneTable) AnyContains(tag ZoneTag, p Point2D) bool {
	if t == nil {
		return false
	}
	for i := range t.zones {
		if t.zones[i].Tag == tag && t.zones[i].Rect.Contains(p) {
			return true
		}
	}
	return false
}

// ZoneAt returns the first zone containing p.
func (t *ZoneTable) ZoneAt(p Point2D) (Zone, bool) {
	if t == nil {
		return Zone{}, false
	}
	for _, z := range t.zones {
		if z.Rect.Contains(p) {
			return z, true
		}
	}
	return Zone{}, false
}

func rect(ax, az, bx, bz, dx, dz float32) Rectangle {
	return Rectangle{
		A: Point2D{ax, az},
		B: Point2D{bx, bz},
		D: Point2D{dx, dz},
	}
}

// DefaultZoneTable is the cottage layout: its six walls, the stairs and hall,
// the interior and the spot where the bow lies.
func DefaultZoneTable() *ZoneTable {
	return NewZoneTable(
		Zone{Name: "front-wall", Tag: ZoneWall, Rect: rect(-1.41, 4.46, -1.49, 4.35, -2.16, 5.07)},
		Zone{Name: "left-wall", Tag: ZoneWall, Rect: rect(-2.15, 5.00, -2.20, 5.04, -3.06, 3.96)},
		Zone{Name: "back-wall", Tag: ZoneWall, Rect: rect(-3.07, 3.92, -3.01, 4.01, -2.27, 3.34)},
		Zone{Name: "right-wall", Tag: ZoneWall, Rect: rect(-2.26, 3.32, -2.34, 3.39, -1.57, 4.22)},
		Zone{Name: "door-post-right", Tag: ZoneWall, Rect: rect(-1.64, 4.22, -1.67, 4.18, -1.96, 4.46)},
		Zone{Name: "door-post-left", Tag: ZoneWall, Rect: rect(-2.16, 4.63, -2.19, 4.59, -2.33, 4.77)},
		Zone{Name: "stairs-hall", Tag: ZoneStairs, Rect: rect(-1.23, 4.23, -1.40, 4.01, -2.19, 4.97)},
		Zone{Name: "interior", Tag: ZoneInterior, Rect: rect(-1.46, 4.39, -2.28, 3.41, -2.19, 4.97)},
		Zone{Name: "bow", Tag: ZonePickup, Rect: rect(-2.69, 4.17, -2.61, 4.07, -2.78, 4.06)},
	)
}

type zoneFile struct {
	Zones []zoneEntry `yaml:"zones"`
}

type zoneEntry struct {
	Name string     `yaml:"name"`
	Tag  *ZoneTag   `yaml:"tag"`
	A    [2]float32 `yaml:"a,flow"`
	B    [2]float32 `yaml:"b,flow"`
	D    [2]float32 `yaml:"d,flow"`
}

// ParseZoneTable decodes a zone file:
//
//	zones:
//	  - name: front-wall
//	    tag: wall
//	    a: [-1.41, 4.46]
//	    b: [-1.49, 4.35]
//	    d: [-2.16, 5.07]
func ParseZoneTable(data []byte) (*ZoneTable, error) {
	var f zoneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode zones: %w", err)
	}
	zones := make([]Zone, 0, len(f.Zones))
	for i, e := range f.Zones {
		if e.Tag == nil {
			return nil, fmt.Errorf("zone %d (%q) has no tag", i, e.Name)
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", *e.Tag, i)
		}
		zones = append(zones, Zone{
			Name: name,
			Tag:  *e.Tag,
			Rect: rect(e.A[0], e.A[1], e.B[0], e.B[1], e.D[0], e.D[1]),
		})
	}
	return NewZoneTable(zones...), nil
}

func LoadZoneTable(path string) (*ZoneTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zones %s: %w", path, err)
	}
	table, err := ParseZoneTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// MarshalZoneTable writes the table in the format ParseZoneTable reads.
func MarshalZoneTable(t *ZoneTable) ([]byte, error) {
	var f zoneFile
	for _, z := range t.Zones() {
		f.Zones = append(f.Zones, zoneEntry{
			Name: z.Name,
			Tag:  &z.Tag,
			A:    [2]float32{z.Rect.A.X, z.Rect.A.Z},
			B:    [2]float32{z.Rect.B.X, z.Rect.B.Z},
			D:    [2]float32{z.Rect.D.X, z.Rect.D.Z},
		})
	}
	return yaml.Marshal(&f)
}
