package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/errs"
)

var (
	errUnexpectedEnd   = errors.New("unexpected end of JSON input")
	errTrailingContent = errors.New("unexpected data after top-level JSON value")
)

// Decode parses raw deliveries and path JSON. Checks run in a fixed order and
// the first failure wins:
//
//  1. deliveries is well-formed JSON
//  2. path is well-formed JSON
//  3. both are arrays (route.ErrInvalidInputFormat)
//  4. every delivery is a two-element array (route.ErrInvalidDeliveryFormat)
//  5. every address is a scalar (route.ErrInvalidAddressFormat)
//
// Every failure is an *errs.ValueIsInvalidError whose Cause carries the
// message to report.
func Decode(rawDeliveries, rawPath []byte) ([]route.Delivery, route.Path, error) {
	deliveriesValue, err := parse(rawDeliveries)
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("deliveries", err)
	}

	pathValue, err := parse(rawPath)
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("path", err)
	}

	deliveryItems, deliveriesOK := deliveriesValue.([]any)
	pathItems, pathOK := pathValue.([]any)
	if !deliveriesOK || !pathOK {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("input", route.ErrInvalidInputFormat)
	}

	pairs := make([][]any, 0, len(deliveryItems))
	for _, item := range deliveryItems {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("deliveries", route.ErrInvalidDeliveryFormat)
		}
		pairs = append(pairs, pair)
	}

	deliveries, err := toDeliveries(pairs)
	if err != nil {
		return nil, nil, err
	}

	path, err := toPath(pathItems)
	if err != nil {
		return nil, nil, err
	}

	return deliveries, path, nil
}

func toDeliveries(pairs [][]any) ([]route.Delivery, error) {
	deliveries := make([]route.Delivery, 0, len(pairs))
	for _, pair := range pairs {
		pickup, pickupErr := kernel.NewAddress(pair[0])
		dropoff, dropoffErr := kernel.NewAddress(pair[1])
		if pickupErr != nil || dropoffErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("deliveries", route.ErrInvalidAddressFormat)
		}

		d, err := route.NewDelivery(pickup, dropoff)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("deliveries", route.ErrInvalidDeliveryFormat)
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func toPath(items []any) (route.Path, error) {
	addresses := make([]kernel.Address, 0, len(items))
	for _, item := range items {
		a, err := kernel.NewAddress(item)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("path", route.ErrInvalidAddressFormat)
		}
		addresses = append(addresses, a)
	}
	return route.NewPath(addresses...)
}

// parse decodes exactly one JSON value, keeping numbers as json.Number so
// that large integers survive until they become addresses.
func parse(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errUnexpectedEnd
		}
		return nil, err
	}

	var extra any
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return value, nil
	case err != nil && !errors.Is(err, io.ErrUnexpectedEOF):
		return nil, err
	default:
		return nil, errTrailingContent
	}
}
