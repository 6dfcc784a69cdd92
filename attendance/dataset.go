package attendance

// 年级键，与数据文件中的键一致
const (
	Freshmen   = "freshmen"
	Sophomores = "sophomores"
	Juniors    = "juniors"
	Seniors    = "seniors"
)

// Classes 年级顺序以及屏幕上的缩写
var Classes = []struct {
	Key  string
	Name string
}{
	{Freshmen, "FSMN"},
	{Sophomores, "SPHS"},
	{Juniors, "JNRS"},
	{Seniors, "SNRS"},
}

// Values 数据源返回的百分比，按年级键索引
type Values map[string]float64

// Zero 全零的默认数据
func Zero() Values {
	v := make(Values, len(Classes))
	for _, c := range Classes {
		v[c.Key] = 0
	}
	return v
}

// Dataset 四个年级的记录，启动时创建一次，之后原地修改
type Dataset struct {
	Records []*ClassRecord
}

// NewDataset 创建全零的数据集
func NewDataset() *Dataset {
	d := &Dataset{Records: make([]*ClassRecord, 0, len(Classes))}
	for _, c := range Classes {
		d.Records = append(d.Records, &ClassRecord{Key: c.Key, Name: c.Name})
	}
	return d
}

// Apply 整体刷新百分比，缺失的键视为 0。名称和庆祝标记保持不变。
func (d *Dataset) Apply(v Values) {
	for _, r := range d.Records {
		r.SetPercentage(v[r.Key])
	}
}

// Get 按键查找记录
func (d *Dataset) Get(key string) (*ClassRecord, bool) {
	for _, r := range d.Records {
		if r.Key == key {
			return r, true
		}
	}
	return nil, false
}

// Snapshot 返回记录的副本
func (d *Dataset) Snapshot() []ClassRecord {
	out := make([]ClassRecord, len(d.Records))
	for i, r := range d.Records {
		out[i] = *r
	}
	return out
}
