package data_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"listkit/data"
)

func TestSortAttributeOrders(t *testing.T) {
	q := url.Values{"sort": {"-published_at"}}
	s := data.ParseSort("/posts", q, "title", "published_at")

	orders := s.AttributeOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "published_at", orders[0].Name)
	assert.Equal(t, data.Desc, orders[0].Direction)
}

func TestSortIgnoresUnknownAttributes(t *testing.T) {
	q := url.Values{"sort": {"password,-title"}}
	s := data.ParseSort("/posts", q, "title")

	orders := s.AttributeOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "title", orders[0].Name)
	assert.Equal(t, data.Desc, orders[0].Direction)
}

func TestSortSingleSortKeepsFirstOnly(t *testing.T) {
	q := url.Values{"sort": {"title,-published_at"}}
	s := data.ParseSort("/posts", q, "title", "published_at")

	orders := s.AttributeOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "title", orders[0].Name)
}

func TestSortMultiSort(t *testing.T) {
	q := url.Values{"sort": {"title,-published_at"}}
	s := data.ParseSort("/posts", q, "title", "published_at")
	s.EnableMultiSort = true

	orders := s.AttributeOrders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "title", orders[0].Name)
	assert.Equal(t, "published_at", orders[1].Name)
}

func TestSortDefaultOrders(t *testing.T) {
	s := data.ParseSort("/posts", url.Values{}, "title", "published_at")
	s.DefaultOrders = []data.AttributeOrder{{Name: "published_at", Direction: data.Desc}}

	orders := s.AttributeOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "published_at", orders[0].Name)
	assert.Equal(t, data.Desc, orders[0].Direction)
}

func TestSortCreateSortParamToggles(t *testing.T) {
	s := data.ParseSort("/posts", url.Values{}, "title")
	assert.Equal(t, "title", s.CreateSortParam("title"))

	s.Params = url.Values{"sort": {"title"}}
	assert.Equal(t, "-title", s.CreateSortParam("title"))

	s.Params = url.Values{"sort": {"-title"}}
	assert.Equal(t, "title", s.CreateSortParam("title"))
}

func TestSortCreateSortParamMultiSortKeepsRest(t *testing.T) {
	q := url.Values{"sort": {"title,-published_at"}}
	s := data.ParseSort("/posts", q, "title", "published_at")
	s.EnableMultiSort = true

	// toggling published_at moves it to the front, title stays behind
	assert.Equal(t, "published_at,title", s.CreateSortParam("published_at"))
}

func TestSortCreateURLPreservesParams(t *testing.T) {
	q := url.Values{"page": {"2"}, "sort": {"title"}}
	s := data.ParseSort("/posts", q, "title")

	assert.Equal(t, "/posts?page=2&sort=-title", s.CreateURL("title"))
}

func TestSortOrder(t *testing.T) {
	q := url.Values{"sort": {"-title"}}
	s := data.ParseSort("/posts", q, "title", "author")

	dir, ok := s.Order("title")
	assert.True(t, ok)
	assert.Equal(t, data.Desc, dir)

	_, ok = s.Order("author")
	assert.False(t, ok)
}
