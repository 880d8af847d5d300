package stellar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// SolarTemperature is the effective solar temperature used by the
// radius/luminosity/temperature relations, chosen to be consistent with
// TempFromLuminosity.
const SolarTemperature = 5808.27928315314

// ErrUnknownClass is returned for luminosity classes other than I to V.
var ErrUnknownClass = errors.New("unknown luminosity class")

// LuminosityFromRadiusAndTemp returns L = R²⋅(T/T☉)⁴.
func LuminosityFromRadiusAndTemp(radius, T float64) float64 {
	return radius * radius * math.Pow(T/SolarTemperature, 4)
}

// RadiusFromTempAndLuminosity returns R = sqrt(L)⋅(T☉/T)².
func RadiusFromTempAndLuminosity(T, luminosity float64) float64 {
	return SolarTemperature * SolarTemperature * math.Sqrt(luminosity) / (T * T)
}

// TempFromLuminosityAndRadius returns T = T☉⋅(L/R²)^¼.
func TempFromLuminosityAndRadius(luminosity, radius float64) float64 {
	return SolarTemperature * math.Pow(luminosity/(radius*radius), 0.25)
}

// LuminosityFromMass is the main sequence mass-luminosity relation
// (Zeilik, p. 239).
func LuminosityFromMass(mass float64) float64 {
	if mass < 0.43 {
		return 0.232220431737728 * math.Pow(mass, 2.26)
	}
	return math.Pow(mass, 3.99)
}

// MassFromLuminosity inverts LuminosityFromMass.
func MassFromLuminosity(luminosity float64) float64 {
	if luminosity < 0.0344777675857638 {
		return math.Pow(luminosity/0.232220431737728, 1/2.26)
	}
	return math.Pow(luminosity, 1/3.99)
}

// cubic fits of log L over log T, per luminosity class
var classCoefficients = map[string][4]float64{
	"v":   {-321.9678859, 224.0898712, -52.79524902, 4.246993586},
	"iv":  {202.4459125, -153.2705238, 37.56424001, -2.951305086},
	"iii": {167.6481445, -111.1947972, 23.58216279, -1.538933688},
	"ii":  {-108.7715394, 99.03111768, -28.98591327, 2.794351267},
	"i":   {1.363482439, 3.68952674, -1.52632182, 0.189588611},
}

// LuminosityFromTempAndClass returns the luminosity of a star of temperature
// T and luminosity class klass ("V", "III", "Ib", …). An empty class means
// main sequence. Sub-class letters a and b are ignored. Classes I–IV are crude
// approximations.
func LuminosityFromTempAndClass(T float64, klass string) (float64, error) {
	k := strings.ToLower(strings.TrimSpace(klass))
	if k == "" {
		k = "v"
	}
	if i := strings.IndexAny(k, "ab"); i > 0 {
		k = k[:i]
	}
	c, ok := classCoefficients[k]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, klass)
	}
	logT := math.Log10(T)
	logL := c[0] + logT*(c[1]+logT*(c[2]+logT*c[3]))
	return math.Pow(10, logL), nil
}

// Habitable zone of the solar system, in AU.
const (
	SolarHabitableInner = 0.56
	SolarHabitableOuter = 1.065
)

// HabitableZone returns the inner and outer edge (AU) of the circumstellar
// habitable zone of a star of given luminosity, scaling the solar zone by
// sqrt(L).
func HabitableZone(luminosity float64) (inner, outer float64) {
	if luminosity <= 0 {
		return 0, 0
	}
	s := math.Sqrt(luminosity)
	return s * SolarHabitableInner, s * SolarHabitableOuter
}

// sextic fits of log T over log L for main sequence stars, by upper bound of
// log L
var mainSequenceTemp = []struct {
	below float64
	k     [7]float64
}{
	{-1.61, [7]float64{3.764248474913030, 1.403164363373530e-01, 1.397096488347830e-02, 1.462579521663530e-03, 1.142039910577920e-04, 5.340095201939730e-06, 1.008975018735050e-07}},
	{0.22, [7]float64{3.764047490649370, 1.397208360516620e-01, 1.319494711074820e-02, 8.780162179209580e-04, -1.608767853404600e-04, -7.189237786420370e-05, -9.843092175989100e-06}},
	{1.48, [7]float64{3.764049359999160, 1.397005055143710e-01, 1.328345123920250e-02, 6.811486841687640e-04, 5.156479540298310e-05, -2.309315279008070e-04, 1.344297768709770e-05}},
	{2.61, [7]float64{3.762086821782850, 1.454166837534800e-01, 6.845847579637430e-03, 3.960765438353460e-03, -4.646552016102080e-04, -3.810074383330720e-04, 6.235862541187450e-05}},
	{3.62, [7]float64{3.778550743814600, 1.298970959402520e-01, 1.428107077288620e-03, 1.670453994945310e-02, -6.932502291820940e-03, 1.038456655083010e-03, -5.599205585786900e-05}},
	{5.43, [7]float64{3.949431460366080, -1.542812513214520e-01, 1.979230342627000e-01, -5.559610061930400e-02, 7.995396102079130e-03, -6.008467485100630e-04, 1.877705306970320e-05}},
	{math.Inf(1), [7]float64{4.367970995185480, -3.148711784564640e-01, 1.433999680976210e-01, -1.307401291373810e-02, -1.592553698503740e-03, 3.579732273982070e-04, -1.780455698059300e-05}},
}

// TempFromLuminosity returns the temperature of a main sequence star of
// given luminosity. It inverts LuminosityFromTempAndClass for class V to
// about 1e-6 between 10^-4.5 and 10^5.9 L☉ (2100 K to 49500 K).
func TempFromLuminosity(luminosity float64) float64 {
	logL := math.Log10(luminosity)
	i := 0
	for logL >= mainSequenceTemp[i].below {
		i++
	}
	return math.Pow(10, horner(mainSequenceTemp[i].k[:], logL))
}

// polynomial fits of T over R for main sequence stars, by upper bound of R
var radiusTemp = []struct {
	below float64
	k     [9]float64
}{
	{0.1, [9]float64{1.352167675303220e+03, 3.359910475409220e+04, -7.841980110848950e+05, 1.608437913538310e+07, -2.335465020889280e+08, 2.298017687048810e+09, -1.455278853460670e+10, 5.347656769974200e+10, -8.661772802892960e+10}},
	{0.25, [9]float64{1.525161328287710e+03, 1.833388724521620e+04, -1.705303603098400e+05, 1.453772446494210e+06, -8.738576748895840e+06, 3.551400119504610e+07, -9.268267416353600e+07, 1.400731632124590e+08, -9.314742958565310e+07}},
	{0.5, [9]float64{1.905043475208740e+03, 6.714562049156160e+03, -1.775754147288060e+03, -6.118276193202280e+04, 3.285397184949330e+05, -8.667711585986540e+05, 1.306672555602760e+06, -1.075768596060730e+06, 3.767573532429320e+05}},
	{1, [9]float64{2.068117524825800e+03, 5.563862156874740e+03, -4.852076407317620e+03, 3.656262613625360e+03, 2.735878265712290e+03, -8.446103667751200e+03, 8.146783882748110e+03, -3.772888315875210e+03, 7.084430070267550e+02}},
	{1.5, [9]float64{2.391700450196890e+03, 3.732078193208790e+03, -9.207325061264240e+02, 8.337197622713310e+02, -6.978692420200440e+02, 9.007965048663700e+02, -6.299251546228450e+02, 2.333471670598840e+02, -3.483618154648830e+01}},
	{2, [9]float64{4.141930224948910e+03, -9.707717257046770e+02, 3.494675279709460e+03, -7.094945897782700e+02, -2.366741381565990e+02, -1.711813027298520e+01, 1.693821363405700e+02, -4.906402710231200e+01, 1.606690252467780}},
	{2.5, [9]float64{1.812823450827590e+03, -6.513017099155030e+03, 1.939158041180000e+04, -8.882337002622440e+03, -4.895020183759620e+03, 6.184021623896910e+03, -2.175410979657530e+03, 2.991466833783430e+02, -1.088715599463440e+01}},
	{3, [9]float64{2.584483464473080e+04, -2.043523950295710e+04, 3.334179583069220e+03, 7.408036863488060e+02, 1.806764903314900e+03, -6.614503224708120e+02, -1.503753749805980e+02, 8.828159374463800e+01, -9.711614742002040}},
	{4, [9]float64{1.502686256433260e+04, -2.093063831305350e+04, 9.871332671376230e+03, 2.324058435953190e+03, -1.682033711296490e+03, 7.811434674292740e+01, 9.729096917985110e+01, -2.130752285037850e+01, 1.372521411555170}},
	{8, [9]float64{-3.498216465247100e+04, 3.503553066540010e+04, -8.355506195235950e+03, 1.051424694678840e+03, -1.008873086585710e+01, -1.685581514926510e+01, 2.456753596167820, -1.526639035170680e-01, 3.710443648404950e-03}},
	{math.Inf(1), [9]float64{-8.589586311322640e+03, 1.447346090401260e+04, -1.960433900218230e+03, 1.784977622754930e+02, -9.862272685878200, 2.742539859816470e-01, -6.690161821084530e-05, -1.985956324720600e-04, 3.636436670319290e-06}},
}

// TempFromRadius returns the temperature of a main sequence star of given
// radius. Valid for 0.035 to 16.3 R☉ (2000 K to 55000 K); the fit diverges
// outside this range.
func TempFromRadius(radius float64) float64 {
	i := 0
	for radius >= radiusTemp[i].below {
		i++
	}
	return horner(radiusTemp[i].k[:], radius)
}

// horner evaluates k[0] + x⋅(k[1] + x⋅(…)).
func horner(k []float64, x float64) float64 {
	r := 0.0
	for i := len(k) - 1; i >= 0; i-- {
		r = k[i] + x*r
	}
	return r
}

// ColorFromTemp approximates the color of a black body of temperature T,
// clamped to 1000 K … 40000 K.
func ColorFromTemp(T float64) color.RGBA {
	T = math.Min(math.Max(T, 1000), 40000)
	l := math.Log10(T)
	l2, l3 := l*l, l*l*l
	r := 22686.34111 - l*15082.52755 + l2*3375.333832 - l3*252.4073853
	g := 13836.23586 - l*9069.078214 + l2*2015.254756 - l3*149.7766966
	if T <= 6500 {
		g = -811.6499145 + l*36.97365953 + l2*160.7861677 - l3*25.57573664
	}
	b := -11545.34298 + l*8529.658165 - l2*2150.198586 + l3*190.0306573
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 255)))
}
