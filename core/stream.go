package core

import (
	"fmt"

	"github.com/tsawler/pdfcontent/internal/filters"
)

// Decode decodes the stream data according to the Filter entry of the stream
// dictionary. Filter may be a single name or an array applied in order, with
// DecodeParms matching it as a dictionary or an array of dictionaries.
func (s *Stream) Decode() ([]byte, error) {
	return DecodeFilters(s.Data, s.Dict.Get("Filter"), s.Dict.Get("DecodeParms"))
}

// DecodeFilters applies a Filter/DecodeParms pair to data. Both full and
// abbreviated filter names are accepted, so the same code serves stream
// dictionaries and inline image headers.
func DecodeFilters(data []byte, filterObj, paramsObj Object) ([]byte, error) {
	switch f := filterObj.(type) {
	case nil, Null:
		return data, nil

	case Name:
		return filters.Decode(string(f), data, dictToParams(paramsObjToDict(paramsObj)))

	case Array:
		for i, filter := range f {
			name, ok := filter.(Name)
			if !ok {
				return nil, fmt.Errorf("filter %d is not a name: %T", i, filter)
			}

			// An array of params pairs up with the filters; a single
			// dictionary applies to every filter.
			var params Dict
			if paramsArray, ok := paramsObj.(Array); ok {
				params = paramsObjToDict(paramsArray.Get(i))
			} else {
				params = paramsObjToDict(paramsObj)
			}

			var err error
			data, err = filters.Decode(string(name), data, dictToParams(params))
			if err != nil {
				return nil, fmt.Errorf("filter %d (%s) failed: %w", i, name, err)
			}
		}
		return data, nil
	}

	return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
}

// paramsObjToDict returns obj as a Dict, or nil for anything else.
func paramsObjToDict(obj Object) Dict {
	dict, _ := obj.(Dict)
	return dict
}

// dictToParams converts a Dict to filters.Params, translating PDF object
// types to Go primitive types (Int->int, Real->float64, Bool->bool, etc.).
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}

	params := make(filters.Params)
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		default:
			params[k] = v
		}
	}
	return params
}
