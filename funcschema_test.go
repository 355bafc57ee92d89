package funcschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/freakynit/openai-function-schema-generator/descriptor"
	"github.com/freakynit/openai-function-schema-generator/testutil"
)

type priority string

func (priority) EnumValues() []string {
	return []string{"LOW", "MEDIUM", "HIGH"}
}

type ticket struct {
	Title    string    `schema:"required,description=Short summary"`
	Body     string    `schema:"description=Full description"`
	Priority priority  `schema:"required"`
	Labels   []string  `schema:"description=Labels to attach"`
	DueDate  time.Time `schema:"format=date"`
}

type annotatedTicket struct {
	Title string `schema:"required"`
}

func (annotatedTicket) SchemaInfo() descriptor.Metadata {
	return descriptor.Metadata{
		Name:                 "create_ticket",
		Description:          "Create a ticket.",
		Strict:               true,
		AdditionalProperties: true,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("empty type produces the exact default document", func(t *testing.T) {
		type EmptyInput struct{}

		doc, err := Generate[EmptyInput]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `{
  "type": "function",
  "function": {
    "name": "EmptyInput",
    "description": "No description provided.",
    "strict": false,
    "parameters": {
      "type": "object",
      "properties": {}
    }
  }
}`
		if doc != want {
			t.Errorf("document mismatch\nwant:\n%s\ngot:\n%s", want, doc)
		}
	})

	t.Run("fields map to typed properties", func(t *testing.T) {
		doc, err := Generate[ticket]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parsed := testutil.Parse(t, doc)
		props := testutil.At(t, parsed, "function", "parameters", "properties")

		title := testutil.At(t, props, "Title")
		if title["type"] != "string" {
			t.Errorf("Title.type = %v, want string", title["type"])
		}
		if title["description"] != "Short summary" {
			t.Errorf("Title.description = %v, want %q", title["description"], "Short summary")
		}

		labels := testutil.At(t, props, "Labels")
		if labels["type"] != "array" {
			t.Errorf("Labels.type = %v, want array", labels["type"])
		}
		items := testutil.At(t, labels, "items")
		if items["type"] != "string" {
			t.Errorf("Labels.items.type = %v, want string", items["type"])
		}

		due := testutil.At(t, props, "DueDate")
		if due["type"] != "datetime" {
			t.Errorf("DueDate.type = %v, want datetime", due["type"])
		}
		if due["format"] != "date" {
			t.Errorf("DueDate.format = %v, want date", due["format"])
		}

		prio := testutil.At(t, props, "Priority")
		if prio["type"] != "string" {
			t.Errorf("Priority.type = %v, want string", prio["type"])
		}
		enum := testutil.Strings(t, prio, "enum")
		want := []string{"LOW", "MEDIUM", "HIGH"}
		if !reflect.DeepEqual(enum, want) {
			t.Errorf("Priority.enum = %v, want %v", enum, want)
		}

		params := testutil.At(t, parsed, "function", "parameters")
		required := testutil.Strings(t, params, "required")
		if !reflect.DeepEqual(required, []string{"Title", "Priority"}) {
			t.Errorf("required = %v, want [Title Priority]", required)
		}
	})

	t.Run("field name override renames the property and required entry", func(t *testing.T) {
		type input struct {
			City string `schema:"name=customName,required"`
		}

		doc, err := Generate[input]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parsed := testutil.Parse(t, doc)
		params := testutil.At(t, parsed, "function", "parameters")
		props := testutil.At(t, params, "properties")

		if _, ok := props["customName"]; !ok {
			t.Error("expected property customName")
		}
		if _, ok := props["City"]; ok {
			t.Error("declared field identifier should not appear as a property")
		}

		required := testutil.Strings(t, params, "required")
		if !reflect.DeepEqual(required, []string{"customName"}) {
			t.Errorf("required = %v, want [customName]", required)
		}
	})

	t.Run("annotated type drives the envelope", func(t *testing.T) {
		doc, err := Generate[annotatedTicket]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parsed := testutil.Parse(t, doc)
		fn := testutil.At(t, parsed, "function")

		if fn["name"] != "create_ticket" {
			t.Errorf("name = %v, want create_ticket", fn["name"])
		}
		if fn["strict"] != true {
			t.Errorf("strict = %v, want true", fn["strict"])
		}

		params := testutil.At(t, fn, "parameters")
		if params["additionalProperties"] != true {
			t.Errorf("additionalProperties = %v, want true", params["additionalProperties"])
		}
	})

	t.Run("plain type omits additionalProperties entirely", func(t *testing.T) {
		type input struct{ Query string }

		doc, err := Generate[input]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		params := testutil.At(t, testutil.Parse(t, doc), "function", "parameters")
		if _, ok := params["additionalProperties"]; ok {
			t.Error("expected no additionalProperties key without a type-level override")
		}
		if _, ok := params["required"]; ok {
			t.Error("expected no required key when no field is required")
		}
	})

	t.Run("options layer over annotated metadata", func(t *testing.T) {
		doc, err := Generate[annotatedTicket](WithDescription("Open a new ticket."), WithStrict(false))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fn := testutil.At(t, testutil.Parse(t, doc), "function")
		if fn["name"] != "create_ticket" {
			t.Errorf("name = %v, want create_ticket (kept from annotation)", fn["name"])
		}
		if fn["description"] != "Open a new ticket." {
			t.Errorf("description = %v, want option value", fn["description"])
		}
		if fn["strict"] != false {
			t.Errorf("strict = %v, want false", fn["strict"])
		}
	})

	t.Run("function-level options activate additionalProperties", func(t *testing.T) {
		type input struct{ Query string }

		doc, err := Generate[input](WithName("search"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		params := testutil.At(t, testutil.Parse(t, doc), "function", "parameters")
		if params["additionalProperties"] != false {
			t.Errorf("additionalProperties = %v, want false emitted", params["additionalProperties"])
		}
	})

	t.Run("maps stay opaque objects", func(t *testing.T) {
		type input struct {
			Attrs map[string]string
		}

		doc, err := Generate[input]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		attrs := testutil.At(t, testutil.Parse(t, doc), "function", "parameters", "properties", "Attrs")
		if attrs["type"] != "object" {
			t.Errorf("Attrs.type = %v, want object", attrs["type"])
		}
		if _, ok := attrs["properties"]; ok {
			t.Error("map properties must not be reflected into the document")
		}
	})

	t.Run("nested collections produce nested items", func(t *testing.T) {
		type input struct {
			Matrix [][]string
		}

		doc, err := Generate[input]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		matrix := testutil.At(t, testutil.Parse(t, doc), "function", "parameters", "properties", "Matrix")
		inner := testutil.At(t, matrix, "items", "items")
		if inner["type"] != "string" {
			t.Errorf("items.items.type = %v, want string", inner["type"])
		}
	})

	t.Run("output is deterministic and format-stable", func(t *testing.T) {
		first, err := Generate[ticket]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Generate[ticket]()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("repeated generation produced different bytes")
		}

		// Compacting and re-indenting must reproduce the document exactly.
		var compact bytes.Buffer
		if err := json.Compact(&compact, []byte(first)); err != nil {
			t.Fatalf("compact: %v", err)
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
			t.Fatalf("indent: %v", err)
		}
		if indented.String() != first {
			t.Error("re-serialized document is not byte-stable")
		}
	})

	t.Run("cyclic types report an introspection error", func(t *testing.T) {
		type linked struct {
			Next *linked
		}

		_, err := Generate[linked]()
		if !errors.Is(err, ErrIntrospection) {
			t.Errorf("error = %v, want ErrIntrospection", err)
		}
	})
}

type failingSerializer struct{}

func (failingSerializer) Marshal(any) ([]byte, error) {
	return nil, errors.New("writer closed")
}

type failingIntrospector struct{}

func (failingIntrospector) Describe(reflect.Type) (*descriptor.Type, error) {
	return nil, errors.New("no type information")
}

func TestGenerateType(t *testing.T) {
	t.Run("serialization failure is a distinct error, not a placeholder", func(t *testing.T) {
		type input struct{ Query string }

		doc, err := GenerateType(reflect.TypeOf(input{}), WithSerializer(failingSerializer{}))
		if doc != "" {
			t.Errorf("doc = %q, want empty on failure", doc)
		}

		var serErr *SerializationError
		if !errors.As(err, &serErr) {
			t.Fatalf("error = %v, want *SerializationError", err)
		}
		if serErr.Unwrap() == nil {
			t.Error("expected the underlying cause to be attached")
		}
	})

	t.Run("introspector failures propagate", func(t *testing.T) {
		_, err := GenerateType(reflect.TypeOf(struct{}{}), WithIntrospector(failingIntrospector{}))
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("compact serializer produces compact output", func(t *testing.T) {
		type EmptyInput struct{}

		doc, err := GenerateType(reflect.TypeOf(EmptyInput{}), WithSerializer(JSONSerializer{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `{"type":"function","function":{"name":"EmptyInput","description":"No description provided.","strict":false,"parameters":{"type":"object","properties":{}}}}`
		if doc != want {
			t.Errorf("document mismatch\nwant: %s\ngot:  %s", want, doc)
		}
	})
}

func TestGenerateValue(t *testing.T) {
	doc, err := GenerateValue(ticket{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn := testutil.At(t, testutil.Parse(t, doc), "function")
	if fn["name"] != "ticket" {
		t.Errorf("name = %v, want ticket", fn["name"])
	}
}
