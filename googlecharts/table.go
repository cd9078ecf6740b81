// Package googlecharts builds data tables in the JSON form
// understood by the Google Charts library.
package googlecharts

import (
	"encoding"
	"reflect"
	"strings"
	"sync"

	errgo "gopkg.in/errgo.v1"
)

// DataTable holds the contents of a data table. When marshaled as JSON,
// it is suitable for passing to google.visualization.DataTable.
type DataTable struct {
	Cols []Column `json:"cols"`
	Rows []Row    `json:"rows"`
}

type Column struct {
	Type    DataType `json:"type"`
	Id      string   `json:"id"`
	Label   string   `json:"label,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

type Row struct {
	Cells []Cell `json:"c"`
}

type Cell struct {
	Value  interface{} `json:"v,omitempty"`
	Format string      `json:"f,omitempty"`
}

type DataType string

const (
	TBool   DataType = "boolean"
	TNumber DataType = "number"
	TString DataType = "string"
)

// NewDataTable returns a new data table by taking values from x, which
// must be a slice of a struct type or pointer to struct type. It panics
// if x is not of the right type.
//
// Each exported field of the struct type becomes a column. Numeric
// fields give "number" columns, booleans "boolean" and strings
// "string". A field whose type implements encoding.TextMarshaler
// gives a "string" column holding the marshaled text.
//
// The id of the column is taken from the field name by default. Other
// column attributes can be set with the "googlecharts" struct tag,
// which holds the column label optionally followed by comma-separated
// options:
//
//	id=name       set the column id
//	pattern=fmt   set the number format pattern, e.g. "#,##0.000"
//
// As a pattern may itself hold commas, it must be the last option.
//
// Nil elements of a []*struct give a row of empty cells.
func NewDataTable(x interface{}) *DataTable {
	xv := reflect.ValueOf(x)
	info, err := getTypeInfo(xv.Type())
	if err != nil {
		panic(err)
	}
	nrows := xv.Len()
	dt := DataTable{
		Cols: append([]Column(nil), info.cols...),
		Rows: make([]Row, nrows),
	}
	ncols := len(info.cols)
	cells := make([]Cell, nrows*ncols)
	for row := range dt.Rows {
		rcells := cells[0:ncols:ncols]
		cells = cells[ncols:]
		dt.Rows[row].Cells = rcells
		elemv := xv.Index(row)
		if info.indir {
			if elemv.IsNil() {
				continue
			}
			elemv = elemv.Elem()
		}
		for col := range rcells {
			f := &info.fields[col]
			f.set(&rcells[col], elemv.FieldByIndex(f.index))
		}
	}
	return &dt
}

type typeInfo struct {
	indir  bool
	cols   []Column
	fields []fieldInfo
}

var (
	typeMutex sync.RWMutex
	typeMap   = make(map[reflect.Type]*typeInfo)
)

func getTypeInfo(t reflect.Type) (*typeInfo, error) {
	typeMutex.RLock()
	info := typeMap[t]
	typeMutex.RUnlock()
	if info != nil {
		return info, nil
	}
	typeMutex.Lock()
	defer typeMutex.Unlock()
	if info = typeMap[t]; info != nil {
		return info, nil
	}
	info, err := parseTypeInfo(t)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	typeMap[t] = info
	return info, nil
}

func parseTypeInfo(xt reflect.Type) (*typeInfo, error) {
	if xt.Kind() != reflect.Slice {
		return nil, errgo.Newf("argument to NewDataTable needs slice, got %v", xt)
	}
	t := xt.Elem()
	var info typeInfo
	if t.Kind() == reflect.Ptr {
		info.indir = true
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errgo.Newf("argument to NewDataTable needs []struct or []*struct, got %v", xt)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fi, col, err := getFieldInfo(f)
		if err != nil {
			return nil, errgo.Mask(err)
		}
		info.fields = append(info.fields, fi)
		info.cols = append(info.cols, col)
	}
	return &info, nil
}

var kindToDataType = map[reflect.Kind]DataType{
	reflect.Bool:    TBool,
	reflect.Int:     TNumber,
	reflect.Int8:    TNumber,
	reflect.Int16:   TNumber,
	reflect.Int32:   TNumber,
	reflect.Int64:   TNumber,
	reflect.Uint:    TNumber,
	reflect.Uint8:   TNumber,
	reflect.Uint16:  TNumber,
	reflect.Uint32:  TNumber,
	reflect.Uint64:  TNumber,
	reflect.Float32: TNumber,
	reflect.Float64: TNumber,
	reflect.String:  TString,
}

type fieldInfo struct {
	index []int
	set   func(cell *Cell, v reflect.Value)
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func getFieldInfo(f reflect.StructField) (fieldInfo, Column, error) {
	col := Column{
		Id: f.Name,
	}
	info := fieldInfo{
		index: f.Index,
	}
	if f.Type.Implements(textMarshalerType) {
		col.Type = TString
		info.set = setText
	} else {
		dt, ok := kindToDataType[f.Type.Kind()]
		if !ok {
			return fieldInfo{}, Column{}, errgo.Newf("type %s not allowed for field %v", f.Type, f.Name)
		}
		col.Type = dt
		info.set = setValue
	}
	tag := f.Tag.Get("googlecharts")
	if tag == "" {
		return info, col, nil
	}
	label, opts, _ := strings.Cut(tag, ",")
	col.Label = label
	for opts != "" {
		var opt string
		if strings.HasPrefix(opts, "pattern=") {
			// Patterns may contain commas, so take the rest of the tag.
			opt, opts = opts, ""
		} else {
			opt, opts, _ = strings.Cut(opts, ",")
		}
		key, val, ok := strings.Cut(opt, "=")
		if !ok {
			return fieldInfo{}, Column{}, errgo.Newf("invalid googlecharts option %q on field %v", opt, f.Name)
		}
		switch key {
		case "id":
			col.Id = val
		case "pattern":
			col.Pattern = val
		default:
			return fieldInfo{}, Column{}, errgo.Newf("unknown googlecharts option %q on field %v", key, f.Name)
		}
	}
	return info, col, nil
}

func setValue(cell *Cell, v reflect.Value) {
	cell.Value = v.Interface()
}

func setText(cell *Cell, v reflect.Value) {
	data, err := v.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		panic(errgo.Notef(err, "cannot marshal table cell"))
	}
	cell.Value = string(data)
}
