package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies("abracadabra")

	expectEntries := []SymbolAndFreq{
		{'a', 5},
		{'b', 2},
		{'r', 2},
		{'c', 1},
		{'d', 1},
	}
	if actual := ft.Entries(); !reflect.DeepEqual(expectEntries, actual) {
		t.Errorf("wrong entries:\n\texpect: %v\n\tactual: %v", expectEntries, actual)
	}
	if ft.Len() != 5 {
		t.Errorf("expected 5 distinct symbols, got %d", ft.Len())
	}
	if ft.Total() != 11 {
		t.Errorf("expected total 11, got %d", ft.Total())
	}
	if ft.Freq('r') != 2 {
		t.Errorf("expected Freq('r') = 2, got %d", ft.Freq('r'))
	}
	if ft.Freq('z') != 0 {
		t.Errorf("expected Freq('z') = 0, got %d", ft.Freq('z'))
	}
}

func TestCountFrequencies_Unicode(t *testing.T) {
	ft := CountFrequencies("héllo, wörld")
	if ft.Freq('é') != 1 || ft.Freq('ö') != 1 || ft.Freq('l') != 3 {
		t.Errorf("wrong counts: é=%d ö=%d l=%d", ft.Freq('é'), ft.Freq('ö'), ft.Freq('l'))
	}
	if ft.Total() != 12 {
		t.Errorf("expected 12 characters, got %d", ft.Total())
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies("")
	if ft.Len() != 0 || ft.Total() != 0 {
		t.Errorf("expected empty table, got Len=%d Total=%d", ft.Len(), ft.Total())
	}
}

func TestCountSymbols(t *testing.T) {
	a := CountSymbols(SymbolsFromString("mississippi"))
	b := CountFrequencies("mississippi")
	if !reflect.DeepEqual(a.Entries(), b.Entries()) {
		t.Errorf("CountSymbols and CountFrequencies disagree:\n\t%v\n\t%v", a.Entries(), b.Entries())
	}
}

func TestMakeFrequencyTable(t *testing.T) {
	ft := MakeFrequencyTable(
		SymbolAndFreq{'x', 2},
		SymbolAndFreq{'y', 0},
		SymbolAndFreq{'z', 1},
		SymbolAndFreq{'x', 3},
	)
	expectEntries := []SymbolAndFreq{{'x', 5}, {'z', 1}}
	if actual := ft.Entries(); !reflect.DeepEqual(expectEntries, actual) {
		t.Errorf("wrong entries:\n\texpect: %v\n\tactual: %v", expectEntries, actual)
	}
}

func TestFrequencyTable_Entries_IsCopy(t *testing.T) {
	ft := CountFrequencies("aab")
	entries := ft.Entries()
	entries[0].Freq = 100
	if ft.Freq('a') != 2 {
		t.Errorf("Entries exposed internal state: Freq('a') = %d", ft.Freq('a'))
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	ft := CountFrequencies("aaabbc")

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tFreq('a') = 3\n",
		"\tFreq('b') = 2\n",
		"\tFreq('c') = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
