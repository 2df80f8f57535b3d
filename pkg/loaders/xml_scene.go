package loaders

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// MaxImageDimension bounds the width and height a scene document may request
const MaxImageDimension = 1 << 15

// xmlNode is a generic element of a scene document. Element names are
// matched case-insensitively.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (n xmlNode) name() string {
	return strings.ToLower(n.XMLName.Local)
}

func (n xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value, true
		}
	}
	return "", false
}

// typeName returns the variant selected by the type attribute. Fully
// qualified names such as ray.surface.Sphere select their last component.
func (n xmlNode) typeName() string {
	value, _ := n.attr("type")
	value = strings.TrimSpace(value)
	if i := strings.LastIndex(value, "."); i >= 0 {
		value = value[i+1:]
	}
	return strings.ToLower(value)
}

// LoadScene reads and parses an XML scene file
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene parses an XML scene document: an image size, a camera, any
// number of lights and named shaders, and the surfaces in scan order
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var root xmlNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("error reading scene XML: %w", err)
	}
	if root.name() != "scene" {
		return nil, fmt.Errorf("root element must be <scene>, got <%s>", root.XMLName.Local)
	}

	p := &sceneParser{scene: scene.NewScene(nil, 0, 0)}
	for _, child := range root.Children {
		if err := p.parseElement(child); err != nil {
			return nil, err
		}
	}

	if p.scene.Camera == nil {
		return nil, fmt.Errorf("scene has no <camera>")
	}
	if !p.hasImage {
		return nil, fmt.Errorf("scene has no <image> size")
	}

	return p.scene, nil
}

type sceneParser struct {
	scene        *scene.Scene
	hasImage     bool
	surfaceCount int
}

func (p *sceneParser) parseElement(node xmlNode) error {
	switch node.name() {
	case "image":
		if p.hasImage {
			return fmt.Errorf("duplicate <image> element")
		}
		width, height, err := parseImageSize(node.Text)
		if err != nil {
			return fmt.Errorf("error parsing <image>: %w", err)
		}
		p.scene.Width, p.scene.Height = width, height
		p.hasImage = true

	case "camera":
		if p.scene.Camera != nil {
			return fmt.Errorf("duplicate <camera> element")
		}
		config, err := parseCamera(node)
		if err != nil {
			return fmt.Errorf("error parsing <camera>: %w", err)
		}
		p.scene.Camera = renderer.NewCamera(config)

	case "light":
		light, err := parseLight(node)
		if err != nil {
			return fmt.Errorf("error parsing light %d: %w", len(p.scene.Lights), err)
		}
		p.scene.AddLight(light)

	case "shader":
		if _, err := p.parseShader(node); err != nil {
			return err
		}

	case "surface":
		surface, err := p.parseSurface(node)
		if err != nil {
			return fmt.Errorf("error parsing surface %d: %w", p.surfaceCount, err)
		}
		p.scene.AddSurface(surface)
		p.surfaceCount++

	default:
		return fmt.Errorf("unknown scene element <%s>", node.XMLName.Local)
	}
	return nil
}

func parseImageSize(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected width and height, got %q", strings.TrimSpace(text))
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width '%s': %w", fields[0], err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height '%s': %w", fields[1], err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	if width > MaxImageDimension || height > MaxImageDimension {
		return 0, 0, fmt.Errorf("image size %dx%d exceeds the %d pixel dimension limit", width, height, MaxImageDimension)
	}
	return width, height, nil
}

func parseCamera(node xmlNode) (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()

	for _, child := range node.Children {
		var err error
		switch child.name() {
		case "viewpoint":
			config.ViewPoint, err = parseVec3(child)
		case "viewdir":
			config.ViewDir, err = parseVec3(child)
		case "viewup":
			config.ViewUp, err = parseVec3(child)
		case "projnormal":
			config.ProjNormal, err = parseVec3(child)
		case "viewwidth":
			config.ViewWidth, err = parseFloat(child)
		case "viewheight":
			config.ViewHeight, err = parseFloat(child)
		case "projdistance":
			config.ProjDistance, err = parseFloat(child)
		default:
			err = unknownProperty(child)
		}
		if err != nil {
			return config, err
		}
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func parseLight(node xmlNode) (core.Light, error) {
	switch node.typeName() {
	case "", "light", "pointlight":
	default:
		return nil, fmt.Errorf("unknown light type %q", node.typeName())
	}

	position := core.NewVec3(0, 0, 0)
	intensity := core.NewVec3(1, 1, 1)
	for _, child := range node.Children {
		var err error
		switch child.name() {
		case "position":
			position, err = parseVec3(child)
		case "intensity":
			intensity, err = parseVec3(child)
		default:
			err = unknownProperty(child)
		}
		if err != nil {
			return nil, err
		}
	}

	return lights.NewPointLight(position, intensity), nil
}

// parseShader resolves a ref, or builds a shader and registers it when it
// carries a name
func (p *sceneParser) parseShader(node xmlNode) (core.Shader, error) {
	if ref, ok := node.attr("ref"); ok {
		shader, exists := p.scene.Shaders[ref]
		if !exists {
			return nil, fmt.Errorf("unknown shader reference %q", ref)
		}
		return shader, nil
	}

	name, named := node.attr("name")
	shader, err := parseShaderDefinition(node)
	if err != nil {
		if named {
			return nil, fmt.Errorf("error parsing shader %q: %w", name, err)
		}
		return nil, fmt.Errorf("error parsing shader: %w", err)
	}

	if named {
		if err := p.scene.AddShader(name, shader); err != nil {
			return nil, err
		}
	}
	return shader, nil
}

func parseShaderDefinition(node xmlNode) (core.Shader, error) {
	diffuse := core.NewVec3(1, 1, 1)
	specular := core.NewVec3(1, 1, 1)
	exponent := 1.0

	shaderType := node.typeName()
	if shaderType != "lambertian" && shaderType != "phong" {
		return nil, fmt.Errorf("unknown shader type %q", shaderType)
	}

	for _, child := range node.Children {
		var err error
		switch {
		case child.name() == "diffusecolor":
			diffuse, err = parseVec3(child)
		case child.name() == "specularcolor" && shaderType == "phong":
			specular, err = parseVec3(child)
		case child.name() == "exponent" && shaderType == "phong":
			exponent, err = parseFloat(child)
		default:
			err = unknownProperty(child)
		}
		if err != nil {
			return nil, err
		}
	}

	if shaderType == "phong" {
		return material.NewPhong(diffuse, specular, exponent), nil
	}
	return material.NewLambertian(diffuse), nil
}

func (p *sceneParser) parseSurface(node xmlNode) (core.Surface, error) {
	var shader core.Shader
	center := core.NewVec3(0, 0, 0)
	minPt := core.NewVec3(0, 0, 0)
	maxPt := core.NewVec3(0, 0, 0)
	radius, height, tipZ := 1.0, 1.0, 0.0

	surfaceType := node.typeName()
	allowed := map[string][]string{
		"sphere":   {"center", "radius"},
		"box":      {"minpt", "maxpt"},
		"cylinder": {"center", "radius", "height"},
		"cone":     {"center", "radius", "height", "tipz"},
	}
	properties, known := allowed[surfaceType]
	if !known {
		return nil, fmt.Errorf("unknown surface type %q", surfaceType)
	}

	for _, child := range node.Children {
		name := child.name()
		if name == "shader" {
			var err error
			if shader, err = p.parseShader(child); err != nil {
				return nil, err
			}
			continue
		}
		if !contains(properties, name) {
			return nil, unknownProperty(child)
		}

		var err error
		switch name {
		case "center":
			center, err = parseVec3(child)
		case "minpt":
			minPt, err = parseVec3(child)
		case "maxpt":
			maxPt, err = parseVec3(child)
		case "radius":
			radius, err = parseFloat(child)
		case "height":
			height, err = parseFloat(child)
		case "tipz":
			tipZ, err = parseFloat(child)
		}
		if err != nil {
			return nil, err
		}
	}

	switch surfaceType {
	case "sphere":
		return geometry.NewSphere(center, radius, shader)
	case "box":
		return geometry.NewBox(minPt, maxPt, shader)
	case "cylinder":
		return geometry.NewCylinder(center, radius, height, shader)
	default:
		return geometry.NewCone(center, radius, height, tipZ, shader)
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func unknownProperty(node xmlNode) error {
	return fmt.Errorf("unknown property <%s>", node.XMLName.Local)
}

func parseFloat(node xmlNode) (float64, error) {
	text := strings.TrimSpace(node.Text)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid <%s> value '%s': %w", node.XMLName.Local, text, err)
	}
	return value, nil
}

func parseVec3(node xmlNode) (core.Vec3, error) {
	fields := strings.Fields(node.Text)
	if len(fields) != 3 {
		return core.Vec3{}, fmt.Errorf("<%s> requires 3 values, got %d", node.XMLName.Local, len(fields))
	}

	var values [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid <%s> component '%s': %w", node.XMLName.Local, field, err)
		}
		values[i] = value
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
