package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusPending, RequestStatusApproved, true},
		{RequestStatusPending, RequestStatusRejected, true},
		{RequestStatusPending, RequestStatusAssigned, false},
		{RequestStatusPending, RequestStatusDelivered, false},
		{RequestStatusApproved, RequestStatusAssigned, true},
		{RequestStatusApproved, RequestStatusRejected, false},
		{RequestStatusAssigned, RequestStatusDelivered, true},
		{RequestStatusAssigned, RequestStatusApproved, false},
		{RequestStatusRejected, RequestStatusApproved, false},
		{RequestStatusDelivered, RequestStatusPending, false},
		{RequestStatusDelivered, RequestStatusAssigned, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestDeliveryStatusTransitions(t *testing.T) {
	cases := []struct {
		from    DeliveryStatus
		to      DeliveryStatus
		allowed bool
	}{
		{DeliveryStatusPicked, DeliveryStatusInTransit, true},
		{DeliveryStatusPicked, DeliveryStatusDelivered, true},
		{DeliveryStatusInTransit, DeliveryStatusDelivered, true},
		{DeliveryStatusInTransit, DeliveryStatusPicked, false},
		{DeliveryStatusDelivered, DeliveryStatusPicked, false},
		{DeliveryStatusDelivered, DeliveryStatusInTransit, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestParseDeliveryStatus(t *testing.T) {
	for _, valid := range []string{"Picked", "InTransit", "Delivered"} {
		status, err := ParseDeliveryStatus(valid)
		require.NoError(t, err)
		require.EqualValues(t, valid, status)
	}

	for _, invalid := range []string{"", "picked", "Lost", "left at the door"} {
		_, err := ParseDeliveryStatus(invalid)
		require.Error(t, err, "%q should be rejected", invalid)
	}
}
