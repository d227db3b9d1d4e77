// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package bind

import (
	"fmt"
	"reflect"

	"github.com/sunyihoo/go-ethabi/abi"
	"github.com/sunyihoo/go-ethabi/common"
	"github.com/sunyihoo/go-ethabi/log"
)

// Topic constrains one indexed event input in a filter. Its values may be
// anything Convert accepts for the input's type.
type Topic = abi.Topic[any]

// Any matches every value of an indexed input.
func Any() Topic { return abi.AnyTopic[any]() }

// This matches exactly v.
func This(v any) Topic { return abi.ThisTopic(v) }

// OneOf matches any of vs.
func OneOf(vs ...any) Topic { return abi.OneOfTopic(vs...) }

// Event is the typed binding of a contract event.
type Event struct {
	spec    *abi.Event
	names   []string // input names, positional for unnamed inputs
	fields  []string // Go field names of the log record
	indexed abi.Params
	logType reflect.Type
}

// NewEvent synthesizes the binding of ev. Events with tuple inputs are
// rejected with abi.ErrUnsupportedType.
func NewEvent(ev *abi.Event) (*Event, error) {
	names := paramNames(ev.Inputs)
	fields := fieldNames(names)

	structFields := make([]reflect.StructField, len(ev.Inputs))
	for i, input := range ev.Inputs {
		var (
			typ reflect.Type
			err error
		)
		if input.Indexed {
			typ, err = topicType(input.Type)
		} else {
			typ, err = NativeType(input.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("event %s: input %s: %w", ev.Sig, names[i], err)
		}
		structFields[i] = reflect.StructField{
			Name: fields[i],
			Type: typ,
			Tag:  reflect.StructTag(fmt.Sprintf(`abi:"%s"`, names[i])),
		}
	}
	log.Trace("Synthesized event binding", "sig", ev.Sig, "inputs", len(ev.Inputs), "anonymous", ev.Anonymous)
	return &Event{
		spec:    ev,
		names:   names,
		fields:  fields,
		indexed: ev.Inputs.Indexed(),
		logType: reflect.StructOf(structFields),
	}, nil
}

// Spec returns the event description the binding was synthesized from.
func (e *Event) Spec() *abi.Event {
	return e.spec
}

// LogType returns the struct type of decoded log records: one exported field
// per input in declaration order. Indexed inputs whose topic only stores a
// hash of their value are typed common.Hash.
func (e *Event) LogType() reflect.Type {
	return e.logType
}

// Filter builds a topic filter from one Topic per indexed input. Only the
// first abi.MaxIndexedTopics indexed inputs can be constrained, the topics of
// the others are ignored. A constrained topic needs at least one value.
func (e *Event) Filter(topics ...Topic) (abi.TopicFilter, error) {
	var filter abi.TopicFilter
	if len(topics) != len(e.indexed) {
		return filter, fmt.Errorf("%w: got %d topics for %d indexed inputs of %s", abi.ErrArgumentCount, len(topics), len(e.indexed), e.spec.Sig)
	}
	if len(topics) > abi.MaxIndexedTopics {
		log.Debug("Truncating event filter", "event", e.spec.Sig, "indexed", len(topics), "limit", abi.MaxIndexedTopics)
		topics = topics[:abi.MaxIndexedTopics]
	}
	for i, topic := range topics {
		if !topic.IsAny() && len(topic.Values()) == 0 {
			return filter, fmt.Errorf("%w: topic %d of %s has an empty value set", abi.ErrArgumentCount, i, e.spec.Sig)
		}
		t := e.indexed[i].Type
		slot, err := abi.MapTopic(topic, func(v any) (abi.Token, error) {
			native, err := Convert(v, t)
			if err != nil {
				return abi.Token{}, err
			}
			return Encode(native, t)
		})
		if err != nil {
			return filter, fmt.Errorf("topic %d of %s: %w", i, e.spec.Sig, err)
		}
		filter[i] = slot
	}
	return filter, nil
}

// WildcardFilter returns the filter matching every log of the event.
func (e *Event) WildcardFilter() abi.TopicFilter {
	return abi.TopicFilter{}
}

// Topics renders a filter as the topic list of a log query.
func (e *Event) Topics(filter abi.TopicFilter) ([][]common.Hash, error) {
	return e.spec.Topics(filter)
}

// ParseLog decodes a log emitted by the event.
func (e *Event) ParseLog(raw abi.RawLog) (*Log, error) {
	params, err := e.spec.ParseLog(raw)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(params))
	for i, param := range params {
		t := e.spec.Inputs[i].Type
		if e.spec.Inputs[i].Indexed && abi.IsHashedTopic(t) {
			t = abi.FixedBytesType(common.HashLength)
		}
		v, err := Decode(param.Value, t)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", e.names[i], err)
		}
		values[i] = v
	}
	return &Log{Names: e.names, Values: values, event: e}, nil
}

// Log is a decoded event log. Names and Values follow the declaration order
// of the event inputs.
type Log struct {
	Names  []string
	Values []any

	event *Event
}

// Value returns the decoded value of the named input.
func (l *Log) Value(name string) (any, bool) {
	for i, n := range l.Names {
		if n == name {
			return l.Values[i], true
		}
	}
	return nil, false
}

// Record returns a pointer to a struct of the event's LogType holding the
// decoded values.
func (l *Log) Record() any {
	rec := reflect.New(l.event.logType)
	for i, v := range l.Values {
		rec.Elem().Field(i).Set(reflect.ValueOf(v))
	}
	return rec.Interface()
}

// Into copies the decoded values into the struct out points to, matching
// inputs to fields by their Go field name. Inputs without a matching field are
// skipped.
func (l *Log) Into(out any) error {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() || dst.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: log destination %T is not a struct pointer", abi.ErrTypeMismatch, out)
	}
	dst = dst.Elem()
	for i, v := range l.Values {
		field := dst.FieldByName(l.event.fields[i])
		if !field.IsValid() || !field.CanSet() {
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(field.Type()) {
			return fmt.Errorf("%w: field %s of type %v cannot hold %v", abi.ErrTypeMismatch, l.event.fields[i], field.Type(), val.Type())
		}
		field.Set(val)
	}
	return nil
}
