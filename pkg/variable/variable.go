/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package variable implements the typed, array shaped buffers that are bound
// to statement parameters and result columns.
package variable

import (
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/protocol"
	"github.com/cectc/dbbind/pkg/types"
)

// Unbound is the statement position of a Variable not registered with any
// statement.
const Unbound = -1

// Converter transforms a value on its way into or out of a Variable.
type Converter func(value interface{}) (interface{}, error)

// Variable is an array of NumElements slots of one type. Slot i occupies
// data[i*elementSize:(i+1)*elementSize] and its length or NULL marker is
// indicators[i].
type Variable struct {
	desc        *types.TypeDescriptor
	numElements int
	size        int
	scale       int
	elementSize int
	data        []byte
	indicators  []int64
	position    int
	binding     *protocol.Binding

	input  bool
	output bool

	// InConverter, when set, replaces every non-NULL value passed to Set.
	InConverter Converter
	// OutConverter, when set, replaces every non-NULL value returned by Get.
	OutConverter Converter
}

// New allocates a Variable of numElements NULL slots. A non-positive size
// selects the type's default size.
func New(desc *types.TypeDescriptor, numElements, size, scale int) (*Variable, error) {
	if desc == nil {
		return nil, errors.NewInternalError("variable type not specified")
	}
	if numElements < 1 {
		numElements = 1
	}
	if size <= 0 {
		size = desc.DefaultSize
	}
	if scale <= 0 {
		scale = desc.DefaultScale
	}
	if size > constant.MaxBufferSize {
		return nil, errors.OutOfMemory("variable size too large (%d bytes)", size)
	}
	elementSize := desc.BufferSize(size)
	data, err := allocate(numElements, elementSize)
	if err != nil {
		return nil, err
	}
	v := &Variable{
		desc:        desc,
		numElements: numElements,
		size:        size,
		scale:       scale,
		elementSize: elementSize,
		data:        data,
		indicators:  make([]int64, numElements),
		position:    Unbound,
		input:       true,
	}
	for i := range v.indicators {
		v.indicators[i] = constant.NullData
	}
	return v, nil
}

func allocate(numElements, elementSize int) ([]byte, error) {
	if elementSize < 0 || (elementSize > 0 && numElements > constant.MaxBufferSize/elementSize) {
		return nil, errors.OutOfMemory("array size too large (%d elements of %d bytes)", numElements, elementSize)
	}
	return make([]byte, numElements*elementSize), nil
}

func (v *Variable) Type() *types.TypeDescriptor { return v.desc }

func (v *Variable) NumElements() int { return v.numElements }

// Size is the logical size: characters for text, bytes for binary, digits for
// decimals and the display size for fixed width kinds.
func (v *Variable) Size() int { return v.size }

func (v *Variable) Scale() int { return v.scale }

// ElementSize is the stride of one slot in bytes.
func (v *Variable) ElementSize() int { return v.elementSize }

// Position is the 1-based statement position the Variable is bound at, or
// Unbound.
func (v *Variable) Position() int { return v.position }

// Unbind forces the next bind to register the buffer again.
func (v *Variable) Unbind() {
	v.position = Unbound
	v.binding = nil
}

func (v *Variable) IsInput() bool { return v.input }

func (v *Variable) IsOutput() bool { return v.output }

// SetDirection changes how the Variable takes part in parameter binding. A
// Variable that is neither is treated as input.
func (v *Variable) SetDirection(input, output bool) {
	if !input && !output {
		input = true
	}
	if v.input != input || v.output != output {
		v.input, v.output = input, output
		v.Unbind()
	}
}

func (v *Variable) direction() constant.ParamDirection {
	switch {
	case v.input && v.output:
		return constant.ParamInputOutput
	case v.output:
		return constant.ParamOutput
	default:
		return constant.ParamInput
	}
}

// Indicator returns the raw length or NULL marker of slot pos.
func (v *Variable) Indicator(pos int) (int64, error) {
	if err := v.check(pos); err != nil {
		return 0, err
	}
	return v.indicators[pos], nil
}

// IsNull reports whether slot pos holds NULL.
func (v *Variable) IsNull(pos int) bool {
	return pos >= 0 && pos < v.numElements && v.indicators[pos] == constant.NullData
}

func (v *Variable) check(pos int) error {
	if pos < 0 || pos >= v.numElements {
		return errors.IndexOutOfRange(pos, v.numElements)
	}
	return nil
}

func (v *Variable) slot(pos int) []byte {
	start := pos * v.elementSize
	end := start + v.elementSize
	return v.data[start:end:end]
}

// Set stores value in slot pos. A nil value marks the slot NULL. Text and
// binary values longer than the logical size grow the Variable first, which
// unbinds it.
func (v *Variable) Set(pos int, value interface{}) error {
	if err := v.check(pos); err != nil {
		return err
	}
	if value == nil {
		v.indicators[pos] = constant.NullData
		return nil
	}
	if v.InConverter != nil {
		converted, err := v.InConverter(value)
		if err != nil {
			return err
		}
		if converted == nil {
			v.indicators[pos] = constant.NullData
			return nil
		}
		value = converted
	}

	encoded, logical, err := v.desc.Marshal(value)
	if err != nil {
		return err
	}
	if v.desc.VariableWidth() && logical > v.size {
		if err := v.Resize(logical); err != nil {
			return err
		}
	}

	slot := v.slot(pos)
	n := copy(slot, encoded)
	for i := n; i < n+v.desc.Terminator() && i < len(slot); i++ {
		slot[i] = 0
	}
	v.indicators[pos] = int64(len(encoded))
	return nil
}

// Get returns the value of slot pos, nil for NULL. A slot whose indicator
// exceeds the buffer capacity fails with a truncation error instead of
// returning partial data.
func (v *Variable) Get(pos int) (interface{}, error) {
	if err := v.check(pos); err != nil {
		return nil, err
	}
	indicator := v.indicators[pos]
	if indicator == constant.NullData {
		return nil, nil
	}
	slot := v.slot(pos)
	if v.desc.VariableWidth() {
		capacity := int64(v.desc.Capacity(v.elementSize))
		if indicator > capacity || indicator < 0 {
			return nil, errors.DataTruncated(v.position, pos, indicator, capacity)
		}
		slot = slot[:indicator]
	}
	value, err := v.desc.Unmarshal(slot)
	if err != nil {
		return nil, err
	}
	if v.OutConverter != nil {
		return v.OutConverter(value)
	}
	return value, nil
}

// Values returns every slot in order.
func (v *Variable) Values() ([]interface{}, error) {
	out := make([]interface{}, v.numElements)
	for i := range out {
		value, err := v.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}

// Resize changes the logical size of a variable width Variable, keeping every
// slot's content and indicator. The Variable is unbound afterwards. On failure
// nothing changes.
func (v *Variable) Resize(size int) error {
	if !v.desc.VariableWidth() || size == v.size {
		return nil
	}
	if size > constant.MaxBufferSize {
		return errors.OutOfMemory("variable size too large (%d bytes)", size)
	}
	elementSize := v.desc.BufferSize(size)
	data, err := allocate(v.numElements, elementSize)
	if err != nil {
		return err
	}
	width := elementSize
	if v.elementSize < width {
		width = v.elementSize
	}
	for k := 0; k < v.numElements; k++ {
		copy(data[k*elementSize:k*elementSize+width], v.data[k*v.elementSize:k*v.elementSize+width])
	}
	log.Debugf("resize %s variable from %d to %d (%d elements)", v.desc.Kind, v.size, size, v.numElements)
	v.data = data
	v.size = size
	v.elementSize = elementSize
	v.Unbind()
	return nil
}

// Binding describes the buffer to the protocol layer. The returned value
// aliases the Variable's storage until the next Resize.
func (v *Variable) Binding() *protocol.Binding {
	if v.binding == nil {
		v.binding = &protocol.Binding{
			CType:      v.desc.CType,
			SQLType:    v.desc.SQLType,
			ColumnSize: v.size,
			Scale:      v.scale,
			Direction:  v.direction(),
			Buffer:     v.data,
			Stride:     v.elementSize,
			Indicators: v.indicators,
		}
	}
	return v.binding
}

// BindParameter registers the Variable as parameter position of stmt.
func (v *Variable) BindParameter(stmt protocol.Stmt, position int) error {
	rc := stmt.BindParameter(position, v.Binding())
	if err := protocol.Check(stmt, rc, "Variable.BindParameter()"); err != nil {
		return err
	}
	v.position = position
	return nil
}

// BindColumn registers the Variable as the fetch buffer of result column
// position of stmt.
func (v *Variable) BindColumn(stmt protocol.Stmt, position int) error {
	rc := stmt.BindCol(position, v.Binding())
	if err := protocol.Check(stmt, rc, "Variable.BindColumn()"); err != nil {
		return err
	}
	v.position = position
	return nil
}
