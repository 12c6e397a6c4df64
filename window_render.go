package main

import (
	"fmt"
	"log"
	"math"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/explorer"
	"github.com/stewi1014/duofractal/programs"
	"github.com/stewi1014/duofractal/ui"
)

var (
	backgroundColour = mgl32.Vec3{0, 0, 0}
	separatorColour  = mgl32.Vec3{0.3, 0.3, 0.3}
	zoomBoxColour    = mgl32.Vec3{0, 1, 0}
	checkboxColour   = mgl32.Vec3{0.35, 0.35, 0.35}
	checkedColour    = mgl32.Vec3{0.63, 0, 0}
	sliderBarColour  = mgl32.Vec3{0.36, 0.36, 0.36}
)

const (
	zoomBoxWidth  = 2
	checkboxInset = 6
)

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "notification"
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "marker"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_POP_GROUP:
		typeStr = "popGroup"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		typeStr = "pushGroup"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	log.Printf("%v(%v): %v; %v\n", sourceStr, severityStr, typeStr, message)
}

type shaderProgram struct {
	id               uint32
	uniformLocations map[string]int32
}

// Renderer draws explorer frames with OpenGL. It must be created and used on
// the thread that owns the GL context.
type Renderer struct {
	layout   explorer.Layout
	vao      uint32
	vbo      uint32
	programs map[string]*shaderProgram

	// framebuffer pixels per device unit, refreshed every frame
	scale float32
}

func NewRenderer(layout explorer.Layout, debug bool) (*Renderer, error) {
	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	gl.DebugMessageCallback(glDebugMessage, nil)
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	r := &Renderer{
		layout:   layout,
		programs: make(map[string]*shaderProgram),
		scale:    1,
	}

	// one triangle covering the whole viewport
	verticies := []float32{
		-3, -2,
		0, 3,
		3, -2,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	for _, program := range programs.Programs() {
		p, err := loadProgram(program)
		if err != nil {
			r.Delete()
			return nil, fmt.Errorf("program %v: %w", program.Name, err)
		}
		r.programs[program.Name] = p
	}

	return r, nil
}

// Delete frees every GL object the renderer owns.
func (r *Renderer) Delete() {
	for name, p := range r.programs {
		gl.DeleteProgram(p.id)
		delete(r.programs, name)
	}
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}

// Draw renders both panes, the zoom box outline and the control strip into
// a framebuffer of the given pixel size.
func (r *Renderer) Draw(frame explorer.Frame, panel *ui.Panel, fbWidth, fbHeight int) {
	r.scale = float32(fbWidth) / float32(r.layout.Width)
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(backgroundColour[0], backgroundColour[1], backgroundColour[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, pane := range frame.Panes {
		r.drawPane(pane)
	}

	for _, pane := range frame.Panes {
		if pane.ZoomBox != nil {
			r.drawZoomBox(*pane.ZoomBox)
		}
	}

	r.drawPanel(panel)
}

func (r *Renderer) drawPane(pane explorer.PaneFrame) {
	program, ok := r.programs[pane.Params.Program().Name]
	if !ok {
		return
	}

	origin := r.toFramebuffer(pane.Pane.Origin.Add(mgl64.Vec2{0, pane.Pane.Size}))
	side := int32(math.Round(pane.Pane.Size * float64(r.scale)))

	gl.Viewport(origin[0], origin[1], side, side)
	gl.UseProgram(program.id)

	uniforms := pane.Params.Uniforms(programs.Target{
		Origin: mgl32.Vec2{float32(origin[0]), float32(origin[1])},
		Scale:  r.scale,
		Size:   float32(pane.Pane.Size),
	})
	loadUniforms(program, &uniforms)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (r *Renderer) drawZoomBox(box explorer.ZoomBox) {
	lo := box.Origin
	hi := box.Origin.Add(mgl64.Vec2{box.Side, box.Side})
	if box.Side < 0 {
		lo, hi = hi, lo
	}

	r.fillRect(ui.Rect{Min: lo, Max: mgl64.Vec2{hi.X(), lo.Y() + zoomBoxWidth}}, zoomBoxColour)
	r.fillRect(ui.Rect{Min: mgl64.Vec2{lo.X(), hi.Y() - zoomBoxWidth}, Max: hi}, zoomBoxColour)
	r.fillRect(ui.Rect{Min: lo, Max: mgl64.Vec2{lo.X() + zoomBoxWidth, hi.Y()}}, zoomBoxColour)
	r.fillRect(ui.Rect{Min: mgl64.Vec2{hi.X() - zoomBoxWidth, lo.Y()}, Max: hi}, zoomBoxColour)
}

func (r *Renderer) drawPanel(panel *ui.Panel) {
	r.fillRect(ui.Rect{
		Min: mgl64.Vec2{0, r.layout.PaneSize},
		Max: mgl64.Vec2{r.layout.Width, r.layout.PaneSize + 1},
	}, separatorColour)

	for _, c := range panel.Checkboxes() {
		bounds := c.Bounds()
		r.fillRect(bounds, checkboxColour)
		if c.Checked {
			inset := mgl64.Vec2{checkboxInset, checkboxInset}
			r.fillRect(ui.Rect{Min: bounds.Min.Add(inset), Max: bounds.Max.Sub(inset)}, checkedColour)
		}
	}

	for _, s := range panel.Sliders() {
		r.fillRect(s.Bar(), sliderBarColour)
		r.fillRect(s.Knob(), s.Colour)
	}
}

// fillRect clears rect, given in device units, to colour.
func (r *Renderer) fillRect(rect ui.Rect, colour mgl32.Vec3) {
	if size := rect.Size(); size.X() <= 0 || size.Y() <= 0 {
		return
	}

	lo := r.toFramebuffer(mgl64.Vec2{rect.Min.X(), rect.Max.Y()})
	hi := r.toFramebuffer(mgl64.Vec2{rect.Max.X(), rect.Min.Y()})
	if hi[0] <= lo[0] || hi[1] <= lo[1] {
		return
	}

	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(lo[0], lo[1], hi[0]-lo[0], hi[1]-lo[1])
	gl.ClearColor(colour[0], colour[1], colour[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}

// toFramebuffer converts a point in device units, y down, to framebuffer
// pixels, y up.
func (r *Renderer) toFramebuffer(p mgl64.Vec2) [2]int32 {
	scale := float64(r.scale)
	return [2]int32{
		int32(math.Round(p.X() * scale)),
		int32(math.Round((r.layout.Height - p.Y()) * scale)),
	}
}

func loadUniforms(program *shaderProgram, uniforms *programs.Uniforms) {
	v := reflect.ValueOf(uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc, ok := program.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if !ok || loc < 0 {
			// optimised out of this program
			continue
		}

		switch f.Type() {
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}
}

func loadProgram(program programs.Program) (*shaderProgram, error) {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	p := &shaderProgram{
		id:               gl.CreateProgram(),
		uniformLocations: make(map[string]int32),
	}
	gl.AttachShader(p.id, vertexShader)
	gl.AttachShader(p.id, fragmentShader)
	gl.BindAttribLocation(p.id, 0, gl.Str("vert\x00"))
	gl.BindFragDataLocation(p.id, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(p.id)

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(p.id, l, nil, gl.Str(log))
		gl.DeleteProgram(p.id)
		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	t := reflect.TypeOf(programs.Uniforms{})
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		p.uniformLocations[name] = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	}

	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}
